package service

import (
	"context"
	"errors"
	"testing"

	"github.com/PUCETEC-PROG2/proyecto-final-grupo-8-tienda-scooters/internal/dto"
	"github.com/PUCETEC-PROG2/proyecto-final-grupo-8-tienda-scooters/internal/model"
	"github.com/PUCETEC-PROG2/proyecto-final-grupo-8-tienda-scooters/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clienteValido() dto.CrearClienteRequest {
	return dto.CrearClienteRequest{
		Nombre:    "Ana",
		Apellido:  "Pérez",
		Direccion: "Av. Amazonas 123",
		Correo:    "ana@example.com",
		Cedula:    "1712345678",
		Telefono:  "0991234567",
	}
}

func requireCampos(t *testing.T, err error) map[string][]string {
	t.Helper()
	var verr *model.ValidationError
	require.True(t, errors.As(err, &verr), "expected ValidationError, got %v", err)
	return verr.Campos
}

func TestClienteService_Crear_OK(t *testing.T) {
	repo := newStubClienteRepo()
	svc := NewClienteService(repo)

	req := clienteValido()
	req.Nombre = "  Ana  "
	resp, err := svc.Crear(context.Background(), req)
	require.NoError(t, err)
	assert.NotZero(t, resp.ID)
	assert.Equal(t, "Ana", resp.Nombre)
	assert.Len(t, repo.clientes, 1)
}

func TestClienteService_Crear_CorreoYCedulaDuplicados(t *testing.T) {
	repo := newStubClienteRepo()
	svc := NewClienteService(repo)
	_, err := svc.Crear(context.Background(), clienteValido())
	require.NoError(t, err)

	_, err = svc.Crear(context.Background(), clienteValido())
	campos := requireCampos(t, err)
	assert.Equal(t, []string{msgCorreoDuplicado}, campos["correo"])
	assert.Equal(t, []string{msgCedulaDuplicada}, campos["cedula"])
	assert.Len(t, repo.clientes, 1, "nothing written on failure")
}

func TestClienteService_Crear_ReglasYUnicidadJuntas(t *testing.T) {
	repo := newStubClienteRepo()
	svc := NewClienteService(repo)
	_, err := svc.Crear(context.Background(), clienteValido())
	require.NoError(t, err)

	req := clienteValido()
	req.Cedula = "12ab"
	req.Telefono = ""
	_, err = svc.Crear(context.Background(), req)
	campos := requireCampos(t, err)
	assert.Contains(t, campos["correo"], msgCorreoDuplicado)
	assert.Contains(t, campos["cedula"], "La cédula debe tener al menos 10 dígitos.")
	assert.Contains(t, campos["cedula"], "La cédula debe contener solo números.")
	assert.Equal(t, []string{model.MsgObligatorio}, campos["telefono"])
}

func TestClienteService_Actualizar_MismoClienteNoEsDuplicado(t *testing.T) {
	repo := newStubClienteRepo()
	svc := NewClienteService(repo)
	creado, err := svc.Crear(context.Background(), clienteValido())
	require.NoError(t, err)

	dir := "Calle Nueva 9"
	resp, err := svc.Actualizar(context.Background(), creado.ID, dto.ActualizarClienteRequest{Direccion: &dir})
	require.NoError(t, err)
	assert.Equal(t, "Calle Nueva 9", resp.Direccion)
	assert.Equal(t, "Calle Nueva 9", repo.clientes[creado.ID].Direccion)
}

func TestClienteService_Actualizar_CorreoDeOtroCliente(t *testing.T) {
	repo := newStubClienteRepo()
	svc := NewClienteService(repo)
	_, err := svc.Crear(context.Background(), clienteValido())
	require.NoError(t, err)

	otro := clienteValido()
	otro.Correo = "luis@example.com"
	otro.Cedula = "0912345678"
	creado, err := svc.Crear(context.Background(), otro)
	require.NoError(t, err)

	correo := "ana@example.com"
	_, err = svc.Actualizar(context.Background(), creado.ID, dto.ActualizarClienteRequest{Correo: &correo})
	campos := requireCampos(t, err)
	assert.Equal(t, []string{msgCorreoDuplicado}, campos["correo"])
	assert.Equal(t, "luis@example.com", repo.clientes[creado.ID].Correo)
}

func TestClienteService_NoEncontrado(t *testing.T) {
	svc := NewClienteService(newStubClienteRepo())

	_, err := svc.ObtenerPorID(context.Background(), 42)
	assert.ErrorIs(t, err, repository.ErrNoEncontrado)

	err = svc.Eliminar(context.Background(), 42)
	assert.ErrorIs(t, err, repository.ErrNoEncontrado)
}
