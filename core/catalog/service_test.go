package catalog_test

import (
	"context"
	"testing"

	"github.com/brightacademy/backend/core/catalog"
	inmemdb "github.com/brightacademy/backend/storage/inmem"
	testutil "github.com/brightacademy/backend/tests"
)

func newService() *catalog.Service {
	return catalog.NewService(inmemdb.NewCatalogRepository(inmemdb.NewDB()))
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestService_GetByCode(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	testutil.CreateCourse(t, svc, "Development", "BMS-101", "Backend Mastery")
	testutil.CreateCourse(t, svc, "Development", "FE-201", "Frontend Basics")

	if _, err := svc.GetByCode(ctx, "lol"); err != catalog.ErrNotFound {
		t.Errorf("GetByCode() error = %v, want ErrNotFound", err)
	}

	crs, err := svc.GetByCode(ctx, "FE-201")
	if err != nil {
		t.Fatalf("GetByCode(): %v", err)
	}
	if crs.Category != "Development" {
		t.Errorf("category = %q; want Development", crs.Category)
	}
	if crs.CourseName != "Frontend Basics" {
		t.Errorf("courseName = %q", crs.CourseName)
	}
	if crs.Fees.Currency != "Rs." {
		t.Errorf("default currency not applied: %q", crs.Fees.Currency)
	}
}

func TestService_Create_codeUniqueAcrossCategories(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	testutil.CreateCourse(t, svc, "Development", "BMS-101", "Backend Mastery")

	_, err := svc.Create(ctx, testutil.NewCourse("Design", "BMS-101", "Lol"))
	if err != catalog.ErrCourseCodeExists {
		t.Errorf("Create() error = %v, want ErrCourseCodeExists", err)
	}

	cats, err := svc.QueryAll(ctx)
	if err != nil {
		t.Fatalf("QueryAll(): %v", err)
	}
	if len(cats) != 1 {
		t.Errorf("rejected create still minted a category: %+v", cats)
	}
}

func TestService_Update(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	orig := testutil.CreateCourse(t, svc, "Development", "BMS-101", "Backend Mastery")
	testutil.CreateCourse(t, svc, "Development", "FE-201", "Frontend Basics")

	t.Run("unknown code", func(t *testing.T) {
		if _, err := svc.Update(ctx, "lol", catalog.UpdateCourse{}); err != catalog.ErrNotFound {
			t.Errorf("Update() error = %v, want ErrNotFound", err)
		}
	})

	t.Run("rename onto taken code", func(t *testing.T) {
		_, err := svc.Update(ctx, "BMS-101", catalog.UpdateCourse{CourseCode: strPtr("FE-201")})
		if err != catalog.ErrCourseCodeExists {
			t.Errorf("Update() error = %v, want ErrCourseCodeExists", err)
		}
	})

	t.Run("partial update", func(t *testing.T) {
		crs, err := svc.Update(ctx, "BMS-101", catalog.UpdateCourse{
			Subtitle: strPtr("From zero to prod"),
			Students: intPtr(120),
		})
		if err != nil {
			t.Fatalf("Update(): %v", err)
		}
		if crs.Subtitle != "From zero to prod" || crs.Students != 120 {
			t.Errorf("update not applied: %+v", crs)
		}
		if crs.CourseName != orig.CourseName || crs.CourseCode != "BMS-101" {
			t.Errorf("untouched fields changed: %+v", crs)
		}
		if crs.ID != orig.ID || !crs.CreatedAt.Equal(orig.CreatedAt) {
			t.Error("identity fields changed across update")
		}
	})

	t.Run("rename", func(t *testing.T) {
		crs, err := svc.Update(ctx, "BMS-101", catalog.UpdateCourse{CourseCode: strPtr("BMS-110")})
		if err != nil {
			t.Fatalf("Update(): %v", err)
		}
		if crs.CourseCode != "BMS-110" {
			t.Errorf("courseCode = %q; want BMS-110", crs.CourseCode)
		}
		if crs.ID != orig.ID {
			t.Error("rename minted a new id")
		}
		if _, err = svc.GetByCode(ctx, "BMS-101"); err != catalog.ErrNotFound {
			t.Errorf("old code still resolves: %v", err)
		}
	})

	t.Run("rename onto its own code", func(t *testing.T) {
		if _, err := svc.Update(ctx, "BMS-110", catalog.UpdateCourse{CourseCode: strPtr("BMS-110")}); err != nil {
			t.Errorf("Update() onto own code failed: %v", err)
		}
	})
}

func TestService_Delete(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	testutil.CreateCourse(t, svc, "Development", "BMS-101", "Backend Mastery")

	if err := svc.Delete(ctx, "lol"); err != catalog.ErrNotFound {
		t.Errorf("Delete() error = %v, want ErrNotFound", err)
	}
	if err := svc.Delete(ctx, "BMS-101"); err != nil {
		t.Fatalf("Delete(): %v", err)
	}
	if err := svc.Delete(ctx, "BMS-101"); err != catalog.ErrNotFound {
		t.Errorf("Delete() twice error = %v, want ErrNotFound", err)
	}

	// the emptied category is kept
	cats, err := svc.QueryAll(ctx)
	if err != nil {
		t.Fatalf("QueryAll(): %v", err)
	}
	if len(cats) != 1 || len(cats[0].Courses) != 0 {
		t.Errorf("expected one empty category, got %+v", cats)
	}
}
