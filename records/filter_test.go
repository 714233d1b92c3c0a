package records_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/riteshgharti333/hospital-management-app-sub001/internal/cacheinfra"
	"github.com/riteshgharti333/hospital-management-app-sub001/model"
	"github.com/riteshgharti333/hospital-management-app-sub001/pkg/testsupport"
	"github.com/riteshgharti333/hospital-management-app-sub001/records"
)

// filterFixture seeds 15 doctors: odd IDs active, even IDs retired,
// department_id cycling 1..5.
func filterFixture(t *testing.T) (*records.Pager[*model.Doctor], context.Context) {
	t.Helper()
	db := testsupport.NewDB(t)
	testsupport.CreateTables(t, db, (*model.Doctor)(nil))

	seed := make([]*model.Doctor, 0, 15)
	for i := 1; i <= 15; i++ {
		status := "active"
		if i%2 == 0 {
			status = "retired"
		}
		seed = append(seed, &model.Doctor{
			ID:             int64(i),
			RegistrationNo: fmt.Sprintf("DOC-%04d", i),
			FullName:       fmt.Sprintf("Doctor %d", i),
			DepartmentID:   int64(1 + (i-1)%5),
			Status:         status,
			CreatedAt:      time.Date(2026, 1, i, 0, 0, 0, 0, time.UTC),
		})
	}
	testsupport.MustInsert(t, db, &seed)

	pager, err := records.NewPager(db, nil, nil, model.DoctorDescriptor)
	require.NoError(t, err)
	return pager, context.Background()
}

func TestPageFilteredEquals(t *testing.T) {
	pager, ctx := filterFixture(t)

	page, err := pager.PageFiltered(ctx, 100, []records.Condition{
		records.Equals("status", "active"),
	}, nil)
	require.NoError(t, err)
	require.Len(t, page.Items, 8)
	for _, d := range page.Items {
		require.Equal(t, "active", d.Status)
	}
}

func TestPageFilteredEqualsFold(t *testing.T) {
	pager, ctx := filterFixture(t)

	page, err := pager.PageFiltered(ctx, 100, []records.Condition{
		records.EqualsFold("status", "ACTIVE"),
	}, nil)
	require.NoError(t, err)
	require.Len(t, page.Items, 8, "case-insensitive equality must match stored lowercase")
}

func TestPageFilteredRange(t *testing.T) {
	pager, ctx := filterFixture(t)

	// Closed range.
	page, err := pager.PageFiltered(ctx, 100, []records.Condition{
		records.Range("department_id", 2, 3),
	}, nil)
	require.NoError(t, err)
	require.Len(t, page.Items, 6)
	for _, d := range page.Items {
		require.GreaterOrEqual(t, d.DepartmentID, int64(2))
		require.LessOrEqual(t, d.DepartmentID, int64(3))
	}

	// Half-open "since" range on a date column.
	page, err = pager.PageFiltered(ctx, 100, []records.Condition{
		records.Range("created_at", time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC), nil),
	}, nil)
	require.NoError(t, err)
	require.Len(t, page.Items, 6, "IDs 10..15 were created on or after Jan 10")
}

func TestPageFilteredCombinesWithAnd(t *testing.T) {
	pager, ctx := filterFixture(t)

	page, err := pager.PageFiltered(ctx, 100, []records.Condition{
		records.Equals("status", "active"),
		records.Range("department_id", 3, nil),
	}, nil)
	require.NoError(t, err)
	require.NotEmpty(t, page.Items)
	for _, d := range page.Items {
		require.Equal(t, "active", d.Status)
		require.GreaterOrEqual(t, d.DepartmentID, int64(3))
	}
}

func TestPageFilteredPagesWithinFilter(t *testing.T) {
	pager, ctx := filterFixture(t)
	conds := []records.Condition{records.Equals("status", "active")}

	first, err := pager.PageFiltered(ctx, 5, conds, nil)
	require.NoError(t, err)
	require.Len(t, first.Items, 5)
	require.NotEmpty(t, first.NextCursor)

	cursor, err := records.ParseCursor(first.NextCursor)
	require.NoError(t, err)
	second, err := pager.PageFiltered(ctx, 5, conds, cursor)
	require.NoError(t, err)
	require.Len(t, second.Items, 3, "8 active doctors at limit 5 leave 3 on the second page")
	require.Empty(t, second.NextCursor)

	// Cursor from page one points past its last item, filter still applied.
	require.Greater(t, second.Items[0].ID, first.Items[4].ID)
}

func TestPageFilteredNeverTouchesCache(t *testing.T) {
	db := testsupport.NewDB(t)
	testsupport.CreateTables(t, db, (*model.Doctor)(nil))
	seed := []*model.Doctor{
		{ID: 1, RegistrationNo: "DOC-0001", FullName: "Doctor 1", Status: "active", CreatedAt: time.Now()},
	}
	testsupport.MustInsert(t, db, &seed)

	store := testsupport.NewCountingStore(cacheinfra.NewMemoryStore(0))
	pager, err := records.NewPager(db, store, nil, model.DoctorDescriptor)
	require.NoError(t, err)

	_, err = pager.PageFiltered(context.Background(), 10, []records.Condition{
		records.Equals("status", "active"),
	}, nil)
	require.NoError(t, err)

	require.Zero(t, store.Calls("Get"), "filtered pages read through")
	require.Zero(t, store.Calls("Set"), "filtered pages are not cached")
}
