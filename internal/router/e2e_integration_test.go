//go:build integration

package router

// End-to-end tests against a real Postgres via testcontainers.
// Run with: go test -tags integration ./internal/router/... -v

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/PUCETEC-PROG2/proyecto-final-grupo-8-tienda-scooters/internal/config"
	"github.com/PUCETEC-PROG2/proyecto-final-grupo-8-tienda-scooters/internal/dto"
	"github.com/PUCETEC-PROG2/proyecto-final-grupo-8-tienda-scooters/internal/infra"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcPostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
)

func setupPostgres(t *testing.T) *httptest.Server {
	t.Helper()
	ctx := context.Background()

	pgC, err := tcPostgres.Run(ctx, "postgres:15-alpine",
		tcPostgres.WithDatabase("tienda_test"),
		tcPostgres.WithUsername("tienda"),
		tcPostgres.WithPassword("tienda"),
		testcontainers.WithWaitStrategy(tcPostgres.BasicWaitStrategies()...),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pgC.Terminate(ctx) })

	pgURL, err := pgC.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	cfg := &config.Config{Env: "test", DBDriver: "postgres", DatabaseURL: pgURL}
	db, err := infra.NewDatabase(cfg)
	require.NoError(t, err)

	srv := httptest.NewServer(New(cfg, db))
	t.Cleanup(srv.Close)
	return srv
}

func do(t *testing.T, srv *httptest.Server, method, path string, body any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, srv.URL+path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	return resp
}

func decodeResp(t *testing.T, resp *http.Response, dest any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dest))
}

func TestE2E_PostgresCompraYCascadas(t *testing.T) {
	srv := setupPostgres(t)

	resp := do(t, srv, http.MethodPost, "/v1/clientes", map[string]string{
		"nombre": "Jorge", "apellido": "Salas", "direccion": "Av. Shyris 1",
		"correo": "jorge@example.com", "cedula": "1799999999", "telefono": "0981111111",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var cliente dto.ClienteResponse
	decodeResp(t, resp, &cliente)

	productos := map[string]dto.ProductoResponse{}
	for nombre, precio := range map[string]string{"Casco": "5.00", "Luz": "3.00"} {
		resp = do(t, srv, http.MethodPost, "/v1/productos", map[string]string{"nombre": nombre, "precio": precio})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		var p dto.ProductoResponse
		decodeResp(t, resp, &p)
		productos[nombre] = p
	}

	resp = do(t, srv, http.MethodPost, "/v1/compras", map[string]any{
		"cliente_id": cliente.ID,
		"detalles": []map[string]any{
			{"producto_id": productos["Casco"].ID, "cantidad": 2},
			{"producto_id": productos["Luz"].ID, "cantidad": 1},
		},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var compra dto.CompraResponse
	decodeResp(t, resp, &compra)
	assert.True(t, compra.Total.Equal(decimal.RequireFromString("13.00")), "got %s", compra.Total)

	// The unique (compra, producto) index holds on Postgres too.
	resp = do(t, srv, http.MethodPost, fmt.Sprintf("/v1/compras/%d/detalles", compra.ID),
		map[string]any{"producto_id": productos["Luz"].ID, "cantidad": 1})
	resp.Body.Close()
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	resp = do(t, srv, http.MethodDelete, fmt.Sprintf("/v1/clientes/%d", cliente.ID), nil)
	resp.Body.Close()
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = do(t, srv, http.MethodGet, fmt.Sprintf("/v1/compras/%d", compra.ID), nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestE2E_PostgresCedulaDuplicada(t *testing.T) {
	srv := setupPostgres(t)

	body := map[string]string{
		"nombre": "Ana", "apellido": "Mora", "direccion": "Calle 1",
		"correo": "ana@example.com", "cedula": "1788888888", "telefono": "0982222222",
	}
	resp := do(t, srv, http.MethodPost, "/v1/clientes", body)
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	// Same cedula on a second customer; the service check reports it as a
	// field error before the unique index is reached.
	body["correo"] = "ana.mora@example.com"
	resp = do(t, srv, http.MethodPost, "/v1/clientes", body)
	var verr struct {
		Fields map[string][]string `json:"fields"`
	}
	decodeResp(t, resp, &verr)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Contains(t, verr.Fields, "cedula")
}
