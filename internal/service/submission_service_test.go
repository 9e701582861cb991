package service

import (
	"context"
	"errors"
	"testing"

	"github.com/Masc20/CSO-Clearance-Payment-List/internal/dto"
)

func strPtr(v string) *string { return &v }

func createSample(t *testing.T, ts *testServices, label, first, last string) *dto.SubmissionResponse {
	t.Helper()
	res, err := ts.submission.Create(context.Background(), &dto.CreateSubmissionRequest{
		SectionLabel: label,
		FirstName:    first,
		LastName:     last,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	return res
}

// ── Create ──

func TestSubmissionService_Create_Success(t *testing.T) {
	ts := setupTestServices()

	res, err := ts.submission.Create(context.Background(), &dto.CreateSubmissionRequest{
		SectionLabel: "BSIT - 1A",
		FirstName:    "Ana",
		LastName:     "Cruz",
		MiddleName:   "Reyes",
	})
	if err != nil {
		t.Fatalf("Create should succeed: %v", err)
	}
	if res.ID != "sub-1" {
		t.Errorf("expected generated id sub-1, got %s", res.ID)
	}
	if res.Course != "BSIT" || res.Section != "1A" {
		t.Errorf("expected BSIT/1A, got %s/%s", res.Course, res.Section)
	}
	if res.Amount != 10 {
		t.Errorf("expected default amount 10, got %v", res.Amount)
	}
	if res.Timestamp != "2025-01-15T08:30:00.000Z" {
		t.Errorf("unexpected timestamp %s", res.Timestamp)
	}

	subs, _ := ts.repo.Submission.List(context.Background())
	if len(subs) != 1 || subs[0].ID != res.ID || subs[0].MiddleName != "Reyes" {
		t.Errorf("submission not stored verbatim: %+v", subs)
	}
}

func TestSubmissionService_Create_UsesCurrentAmountOnly(t *testing.T) {
	ts := setupTestServices()
	ctx := context.Background()

	first := createSample(t, ts, "BSIT - 1A", "Ana", "Cruz")
	_, _ = ts.settings.UpdateAmount(ctx, 20)
	second := createSample(t, ts, "BSIT - 1A", "Ben", "Diaz")

	if second.Amount != 20 {
		t.Errorf("expected new amount 20, got %v", second.Amount)
	}
	stored, _ := ts.submission.GetByID(ctx, first.ID)
	if stored.Amount != 10 {
		t.Errorf("past submission must keep amount 10, got %v", stored.Amount)
	}
}

func TestSubmissionService_Create_LabelWithoutSeparator(t *testing.T) {
	ts := setupTestServices()

	res := createSample(t, ts, "BSIT1A", "Ana", "Cruz")
	if res.Course != "Unknown" || res.Section != "Unknown" {
		t.Errorf("expected Unknown/Unknown, got %s/%s", res.Course, res.Section)
	}
}

func TestSubmissionService_Create_MissingSection(t *testing.T) {
	ts := setupTestServices()

	_, err := ts.submission.Create(context.Background(), &dto.CreateSubmissionRequest{FirstName: "A", LastName: "B"})
	if !errors.Is(err, ErrSectionRequired) {
		t.Errorf("expected ErrSectionRequired, got %v", err)
	}
}

func TestSubmissionService_Create_MissingName(t *testing.T) {
	ts := setupTestServices()

	_, err := ts.submission.Create(context.Background(), &dto.CreateSubmissionRequest{SectionLabel: "BSIT - 1A", FirstName: " ", LastName: "B"})
	if !errors.Is(err, ErrNameRequired) {
		t.Errorf("expected ErrNameRequired, got %v", err)
	}
	if ts.store.Len() != 0 {
		t.Error("nothing must be written on validation failure")
	}
}

// ── Update ──

func TestSubmissionService_Update_Success(t *testing.T) {
	ts := setupTestServices()
	ctx := context.Background()
	created := createSample(t, ts, "BSIT - 1A", "Ana", "Cruz")

	res, err := ts.submission.Update(ctx, created.ID, &dto.UpdateSubmissionRequest{
		FirstName:    strPtr("Anna"),
		SectionLabel: strPtr("BSCS - 2A"),
	})
	if err != nil {
		t.Fatalf("Update should succeed: %v", err)
	}
	if res.FirstName != "Anna" || res.LastName != "Cruz" {
		t.Errorf("unexpected names %s %s", res.FirstName, res.LastName)
	}
	if res.Course != "BSCS" || res.Section != "2A" {
		t.Errorf("label not re-split: %s/%s", res.Course, res.Section)
	}
	if res.Timestamp != created.Timestamp {
		t.Error("timestamp must not change unless edited")
	}
}

func TestSubmissionService_Update_NotFound(t *testing.T) {
	ts := setupTestServices()
	ctx := context.Background()
	createSample(t, ts, "BSIT - 1A", "Ana", "Cruz")
	before, _ := ts.store.Get(ctx, "cso_payments")

	_, err := ts.submission.Update(ctx, "missing", &dto.UpdateSubmissionRequest{FirstName: strPtr("X")})
	if !errors.Is(err, ErrSubmissionNotFound) {
		t.Errorf("expected ErrSubmissionNotFound, got %v", err)
	}
	after, _ := ts.store.Get(ctx, "cso_payments")
	if string(before) != string(after) {
		t.Error("collection changed")
	}
}

// ── Delete ──

func TestSubmissionService_Delete(t *testing.T) {
	ts := setupTestServices()
	ctx := context.Background()
	a := createSample(t, ts, "BSIT - 1A", "Ana", "Cruz")
	createSample(t, ts, "BSIT - 1A", "Ben", "Diaz")

	if err := ts.submission.Delete(ctx, a.ID); err != nil {
		t.Fatalf("Delete should succeed: %v", err)
	}
	if _, err := ts.submission.GetByID(ctx, a.ID); !errors.Is(err, ErrSubmissionNotFound) {
		t.Errorf("expected deleted submission to be gone, got %v", err)
	}
}

func TestSubmissionService_Delete_NotFound(t *testing.T) {
	ts := setupTestServices()

	err := ts.submission.Delete(context.Background(), "missing")
	if !errors.Is(err, ErrSubmissionNotFound) {
		t.Errorf("expected ErrSubmissionNotFound, got %v", err)
	}
}

// ── List ──

func TestSubmissionService_List_Filtered(t *testing.T) {
	ts := setupTestServices()
	createSample(t, ts, "BSIT - 1A", "Ana", "Cruz")
	createSample(t, ts, "BSCS - 2A", "Ben", "Diaz")

	res, err := ts.submission.List(context.Background(), &dto.SubmissionFilter{Query: "DIAZ"})
	if err != nil {
		t.Fatalf("List should succeed: %v", err)
	}
	if len(res) != 1 || res[0].LastName != "Diaz" {
		t.Errorf("unexpected result %+v", res)
	}
	if res[0].Label != "BSCS - 2A" {
		t.Errorf("expected label BSCS - 2A, got %s", res[0].Label)
	}
}
