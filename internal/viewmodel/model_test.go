package viewmodel_test

import (
	"context"
	"errors"
	"testing"

	"taskcli/internal/service"
	"taskcli/internal/testutil"
	"taskcli/internal/viewmodel"
)

func loadedModel(t *testing.T, svc *testutil.FakeService) *viewmodel.Model {
	t.Helper()
	vm := viewmodel.New(svc)
	if err := vm.Load(context.Background()); err != nil {
		t.Fatalf("load failed: %v", err)
	}
	return vm
}

func titles(tasks []service.Task) []string {
	out := make([]string, len(tasks))
	for i, task := range tasks {
		out[i] = task.Title
	}
	return out
}

func TestLoadReplacesSequenceInServerOrder(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddTask("Buy milk", "")
	svc.AddTask("Buy eggs", "")

	vm := loadedModel(t, svc)

	got := titles(vm.Tasks())
	want := []string{"Buy milk", "Buy eggs"}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("expected %v, got %v", want, got)
	}
	if vm.Status() != viewmodel.StatusReady {
		t.Errorf("expected ready status, got %v", vm.Status())
	}
}

func TestLoadIsIdempotent(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddTask("Buy milk", "")
	svc.AddTask("Buy eggs", "")

	vm := loadedModel(t, svc)
	first := vm.Tasks()

	if err := vm.Load(context.Background()); err != nil {
		t.Fatalf("second load failed: %v", err)
	}
	second := vm.Tasks()

	if len(first) != len(second) {
		t.Fatalf("sequence length changed: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].ID != second[i].ID {
			t.Errorf("entry %d changed: %s vs %s", i, first[i].ID, second[i].ID)
		}
	}
}

func TestCreateAppendsConfirmedRecord(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddTask("Buy milk", "")

	vm := loadedModel(t, svc)

	task, err := vm.Create(context.Background(), service.NewTask{Title: "  Buy oat milk  "})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if task.Title != "Buy oat milk" {
		t.Errorf("expected trimmed title, got %q", task.Title)
	}
	if task.ID == "" || task.UserID == "" {
		t.Error("expected server-assigned id and user id")
	}
	if task.Completed {
		t.Error("new task must start pending")
	}

	tasks := vm.Tasks()
	if len(tasks) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(tasks))
	}
	if tasks[1].ID != task.ID {
		t.Error("created task must be appended at the end")
	}
}

func TestCreateValidationIssuesNoCall(t *testing.T) {
	svc := testutil.NewFakeService()
	vm := loadedModel(t, svc)

	_, err := vm.Create(context.Background(), service.NewTask{Title: "   "})

	var ve *service.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if svc.Calls["CreateTask"] != 0 {
		t.Errorf("expected zero backend calls, got %d", svc.Calls["CreateTask"])
	}
	if vm.Len() != 0 {
		t.Errorf("sequence must stay empty, got %d entries", vm.Len())
	}
}

func TestUpdateReplacesInPlace(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddTask("one", "")
	id := svc.AddTask("two", "")
	svc.AddTask("three", "")

	vm := loadedModel(t, svc)

	title := "two-renamed"
	updated, err := vm.Update(context.Background(), id, service.TaskPatch{Title: &title})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if !updated.UpdatedAt.After(updated.CreatedAt) {
		t.Error("updated_at must advance on mutation")
	}

	got := titles(vm.Tasks())
	want := []string{"one", "two-renamed", "three"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestUpdateUnknownLocalEntryIsNoOp(t *testing.T) {
	svc := testutil.NewFakeService()
	vm := loadedModel(t, svc)

	// Created server-side after our load; the confirmed record has no
	// local entry to replace.
	id := svc.AddTask("late arrival", "")

	title := "renamed"
	if _, err := vm.Update(context.Background(), id, service.TaskPatch{Title: &title}); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if vm.Len() != 0 {
		t.Errorf("sequence must stay empty, got %d entries", vm.Len())
	}
}

func TestDoubleToggleRestoresState(t *testing.T) {
	svc := testutil.NewFakeService()
	id := svc.AddTask("Buy milk", "")

	vm := loadedModel(t, svc)

	first, err := vm.Toggle(context.Background(), id)
	if err != nil {
		t.Fatalf("first toggle failed: %v", err)
	}
	if !first.Completed {
		t.Error("first toggle must complete the task")
	}

	second, err := vm.Toggle(context.Background(), id)
	if err != nil {
		t.Fatalf("second toggle failed: %v", err)
	}
	if second.Completed {
		t.Error("second toggle must restore pending state")
	}

	if got := vm.Tasks()[0]; got.Completed {
		t.Error("sequence entry must reflect the restored state")
	}
}

func TestDeleteRemovesExactlyOneEntry(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddTask("one", "")
	id := svc.AddTask("two", "")
	svc.AddTask("three", "")

	vm := loadedModel(t, svc)

	if err := vm.Delete(context.Background(), id); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	got := titles(vm.Tasks())
	want := []string{"one", "three"}
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestFailedMutationLeavesSequenceUnchanged(t *testing.T) {
	svc := testutil.NewFakeService()
	id := svc.AddTask("Buy milk", "")

	vm := loadedModel(t, svc)
	svc.ToggleCompleteErr = &service.RequestError{Status: 500, Message: "boom"}

	if _, err := vm.Toggle(context.Background(), id); err == nil {
		t.Fatal("expected toggle to fail")
	}

	if vm.Status() != viewmodel.StatusError {
		t.Errorf("expected error status, got %v", vm.Status())
	}
	if vm.Err() != "boom" {
		t.Errorf("expected recorded message %q, got %q", "boom", vm.Err())
	}
	tasks := vm.Tasks()
	if len(tasks) != 1 || tasks[0].Completed {
		t.Error("sequence must be left unmodified on failure")
	}
}

func TestExpiredCredentialMutatesNothing(t *testing.T) {
	svc := testutil.NewFakeService()
	id := svc.AddTask("Buy milk", "")

	vm := loadedModel(t, svc)
	svc.DeleteTaskErr = service.ErrAuthRequired

	err := vm.Delete(context.Background(), id)
	if !errors.Is(err, service.ErrAuthRequired) {
		t.Fatalf("expected ErrAuthRequired, got %v", err)
	}
	if vm.Len() != 1 {
		t.Error("sequence must be left unmodified on auth failure")
	}
}

func TestTaskByNumber(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddTask("one", "")
	svc.AddTask("two", "")

	vm := loadedModel(t, svc)

	task, err := vm.Task(2)
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if task.Title != "two" {
		t.Errorf("expected %q, got %q", "two", task.Title)
	}

	if _, err := vm.Task(0); err == nil {
		t.Error("expected out-of-range error for 0")
	}
	if _, err := vm.Task(3); err == nil {
		t.Error("expected out-of-range error for 3")
	}
}
