//go:build integration

package postgres_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/dtroode/storefront-server/internal/model"
	repo "github.com/dtroode/storefront-server/internal/repository/postgres"
)

var dsn string

func TestMain(m *testing.M) {
	ctx := context.Background()
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: tc.ContainerRequest{
			Image:        "postgres:15-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "postgres",
				"POSTGRES_PASSWORD": "password",
				"POSTGRES_DB":       "storefront_test",
			},
			WaitingFor: wait.ForListeningPort("5432/tcp").WithStartupTimeout(2 * time.Minute),
		},
		Started: true,
	})
	if err != nil {
		panic(err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		panic(err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		panic(err)
	}
	dsn = fmt.Sprintf("postgres://postgres:password@%s:%s/storefront_test?sslmode=disable", host, port.Port())

	code := m.Run()
	_ = container.Terminate(ctx)
	os.Exit(code)
}

func newCustomer(contact string) model.Customer {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return model.Customer{
		ID:             uuid.New(),
		FirstName:      "Ada",
		Email:          "ada@example.com",
		ContactNumber:  contact,
		PasswordDigest: []byte("digest"),
		Salt:           []byte("salt"),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func TestRepositories_CustomerAndSession(t *testing.T) {
	ctx := context.Background()
	conn, err := repo.NewConnection(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	cr := repo.NewCustomerRepository(conn)
	sr := repo.NewSessionRepository(conn)

	c := newCustomer("9000000001")
	saved, err := cr.Create(ctx, c)
	require.NoError(t, err)
	require.Equal(t, c.ID, saved.ID)

	_, err = cr.Create(ctx, newCustomer("9000000001"))
	require.ErrorIs(t, err, model.ErrAlreadyExists)

	byContact, err := cr.GetByContactNumber(ctx, "9000000001")
	require.NoError(t, err)
	require.Equal(t, c.ID, byContact.ID)

	now := time.Now().UTC().Truncate(time.Microsecond)
	byContact.LastLoginAt = &now
	byContact.PasswordDigest = []byte("new-digest")
	updated, err := cr.Update(ctx, byContact)
	require.NoError(t, err)
	require.Equal(t, []byte("new-digest"), updated.PasswordDigest)
	require.NotNil(t, updated.LastLoginAt)

	s, err := sr.Create(ctx, model.Session{
		ID:         uuid.New(),
		CustomerID: c.ID,
		TokenHash:  []byte("token-hash-1"),
		LoginAt:    now,
		ExpiresAt:  now.Add(model.SessionTTL),
	})
	require.NoError(t, err)
	require.Nil(t, s.LogoutAt)

	got, err := sr.GetByTokenHash(ctx, []byte("token-hash-1"))
	require.NoError(t, err)
	require.Equal(t, c.ID, got.Customer.ID)
	require.True(t, got.Active(now))

	got.LogoutAt = &now
	loggedOut, err := sr.Update(ctx, got)
	require.NoError(t, err)
	require.NotNil(t, loggedOut.LogoutAt)

	// a second close of the same session matches no open row
	_, err = sr.Update(ctx, got)
	require.ErrorIs(t, err, model.ErrNotFound)

	_, err = sr.GetByTokenHash(ctx, []byte("unknown"))
	require.ErrorIs(t, err, model.ErrNotFound)
}

func TestRepositories_Addresses(t *testing.T) {
	ctx := context.Background()
	conn, err := repo.NewConnection(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	cr := repo.NewCustomerRepository(conn)
	ar := repo.NewAddressRepository(conn)
	str := repo.NewStateRepository(conn)

	states, err := str.List(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, states)

	owner := newCustomer("9000000002")
	_, err = cr.Create(ctx, owner)
	require.NoError(t, err)

	address := model.Address{
		ID:               uuid.New(),
		FlatBuildingName: "12B",
		Locality:         "Indiranagar",
		City:             "Bengaluru",
		Pincode:          "560038",
		State:            states[0],
		CreatedAt:        time.Now().UTC(),
	}
	err = conn.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := ar.Create(ctx, address); err != nil {
			return err
		}
		return ar.LinkToCustomer(ctx, owner.ID, address.ID)
	})
	require.NoError(t, err)

	ownerID, err := ar.GetOwnerID(ctx, address.ID)
	require.NoError(t, err)
	require.Equal(t, owner.ID, ownerID)

	list, err := ar.ListByCustomer(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, states[0].Name, list[0].State.Name)

	rolledBack := address
	rolledBack.ID = uuid.New()
	errAbort := errors.New("abort")
	err = conn.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := ar.Create(ctx, rolledBack); err != nil {
			return err
		}
		return errAbort
	})
	require.ErrorIs(t, err, errAbort)
	_, err = ar.GetByID(ctx, rolledBack.ID)
	require.ErrorIs(t, err, model.ErrNotFound)

	require.NoError(t, ar.Delete(ctx, address.ID))
	_, err = ar.GetOwnerID(ctx, address.ID)
	require.ErrorIs(t, err, model.ErrNotFound)
	require.ErrorIs(t, ar.Delete(ctx, address.ID), model.ErrNotFound)
}

func TestRepositories_CatalogEmpty(t *testing.T) {
	ctx := context.Background()
	conn, err := repo.NewConnection(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	_, err = repo.NewBrandRepository(conn).GetByID(ctx, uuid.New())
	require.ErrorIs(t, err, model.ErrNotFound)

	brands, err := repo.NewBrandRepository(conn).ListByName(ctx, "nothing")
	require.NoError(t, err)
	require.Empty(t, brands)

	_, err = repo.NewCategoryRepository(conn).GetByID(ctx, uuid.New())
	require.ErrorIs(t, err, model.ErrNotFound)

	items, err := repo.NewItemRepository(conn).ListByCategory(ctx, uuid.New())
	require.NoError(t, err)
	require.Empty(t, items)
}
