package di_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/riteshgharti333/hospital-management-app-sub001/errs"
	"github.com/riteshgharti333/hospital-management-app-sub001/model"
	"github.com/riteshgharti333/hospital-management-app-sub001/pkg/di"
	"github.com/riteshgharti333/hospital-management-app-sub001/records"
	"github.com/riteshgharti333/hospital-management-app-sub001/sequence"
)

func newTestContainer(t *testing.T) *di.Container {
	t.Helper()
	c, err := di.NewContainer(di.Config{
		Driver: "sqlite3",
		DSN:    "file:" + uuid.NewString() + "?mode=memory&cache=shared&_busy_timeout=5000",
	}, nil)
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })

	c.DB().SetMaxIdleConns(8)
	ctx := context.Background()
	for _, m := range []any{(*sequence.Row)(nil), (*model.Doctor)(nil)} {
		_, err := c.DB().NewCreateTable().Model(m).IfNotExists().Exec(ctx)
		require.NoError(t, err)
	}
	return c
}

func TestContainerRejectsInvalidConfig(t *testing.T) {
	_, err := di.NewContainer(di.Config{Driver: "mysql", DSN: "x"}, nil)
	require.Error(t, err)
}

func TestContainerWiresSharedSingletons(t *testing.T) {
	c := newTestContainer(t)
	ctx := context.Background()

	// One allocator, one database, one cache, shared by everything built off
	// the container.
	id, err := c.Allocator().Next(ctx, model.DoctorIDPrefix)
	require.NoError(t, err)
	require.Equal(t, "DOC-0001", id)

	doctor := &model.Doctor{
		RegistrationNo: id,
		FullName:       "Robert Chen",
		Specialization: "cardiology",
		Status:         "active",
	}
	_, err = c.DB().NewInsert().Model(doctor).Exec(ctx)
	require.NoError(t, err)

	pager, err := di.NewPager(c, model.DoctorDescriptor)
	require.NoError(t, err)
	page, err := pager.Page(ctx, 10, nil)
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	require.Equal(t, "DOC-0001", page.Items[0].RegistrationNo)

	engine, err := di.NewSearchEngine(c, model.DoctorDescriptor, model.DoctorSearch)
	require.NoError(t, err)
	results, err := engine.Search(ctx, "Rob")
	require.NoError(t, err)
	require.Len(t, results, 1)

	require.NotNil(t, c.Metrics())
	require.NotNil(t, c.Store())
	require.NotNil(t, c.Logger())
}

func TestContainerEngineFactoriesValidateDeclarations(t *testing.T) {
	c := newTestContainer(t)

	_, err := di.NewPager(c, records.Descriptor[*model.Doctor]{Name: "doctor"})
	require.ErrorIs(t, err, errs.ErrBadInput)

	_, err = di.NewSearchEngine(c, model.DoctorDescriptor, records.SearchSpec{})
	require.ErrorIs(t, err, errs.ErrBadInput)
}
