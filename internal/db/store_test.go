package db

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/dagraham/timemate/internal/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := OpenMemory()
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestCreateAccountUniqueName(t *testing.T) {
	store := newTestStore(t)

	if _, err := store.CreateAccount("acme"); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := store.CreateAccount("acme"); err == nil {
		t.Fatalf("duplicate account name must be rejected")
	}
}

func TestResolveAccount(t *testing.T) {
	store := newTestStore(t)

	created, err := store.ResolveAccount("acme")
	if err != nil {
		t.Fatalf("resolve new name: %v", err)
	}

	byName, err := store.ResolveAccount("acme")
	if err != nil {
		t.Fatalf("resolve existing name: %v", err)
	}
	if byName.ID != created.ID {
		t.Fatalf("resolved id %d, want %d", byName.ID, created.ID)
	}

	byID, err := store.ResolveAccount(fmt.Sprintf("%d", created.ID))
	if err != nil {
		t.Fatalf("resolve by id: %v", err)
	}
	if byID.Name != "acme" {
		t.Fatalf("resolved name %q", byID.Name)
	}

	var notFound *NotFoundError
	if _, err := store.ResolveAccount("999"); !errors.As(err, &notFound) {
		t.Fatalf("unknown id: got %v, want NotFoundError", err)
	}
}

func TestGetRecordNotFound(t *testing.T) {
	store := newTestStore(t)

	var notFound *NotFoundError
	if _, err := store.GetRecord(42); !errors.As(err, &notFound) {
		t.Fatalf("got %v, want NotFoundError", err)
	}
}

func TestRunningRecord(t *testing.T) {
	store := newTestStore(t)

	running, err := store.RunningRecord()
	if err != nil {
		t.Fatalf("running record: %v", err)
	}
	if running != nil {
		t.Fatalf("expected no running record, got #%d", running.ID)
	}

	account, err := store.CreateAccount("acme")
	if err != nil {
		t.Fatalf("create account: %v", err)
	}
	now := time.Now()
	record := models.TimeRecord{
		AccountID:   account.ID,
		Status:      models.StatusRunning,
		StartedAt:   &now,
		EffectiveAt: now,
	}
	if err := store.CreateRecord(&record); err != nil {
		t.Fatalf("create record: %v", err)
	}

	running, err = store.RunningRecord()
	if err != nil {
		t.Fatalf("running record: %v", err)
	}
	if running == nil || running.ID != record.ID {
		t.Fatalf("expected record #%d to be running", record.ID)
	}
	if running.Account.Name != "acme" {
		t.Fatalf("account not preloaded: %+v", running.Account)
	}
}

func TestListRecordsActiveOnly(t *testing.T) {
	store := newTestStore(t)
	account, err := store.CreateAccount("acme")
	if err != nil {
		t.Fatalf("create account: %v", err)
	}

	now := time.Now()
	for _, status := range []models.Status{models.StatusPaused, models.StatusInactive} {
		record := models.TimeRecord{AccountID: account.ID, Status: status, EffectiveAt: now}
		if err := store.CreateRecord(&record); err != nil {
			t.Fatalf("create record: %v", err)
		}
	}

	active, err := store.ListRecords(true)
	if err != nil {
		t.Fatalf("list active: %v", err)
	}
	if len(active) != 1 || active[0].Status != models.StatusPaused {
		t.Fatalf("active records = %+v", active)
	}

	all, err := store.ListRecords(false)
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("all records = %d, want 2", len(all))
	}
}
