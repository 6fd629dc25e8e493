// cmd/seeddemo/main.go: carga un catálogo de demo (productos, inventario y un cliente).
// Uso: go run ./cmd/seeddemo
// Re-running is safe: products are matched by name and the customer by cedula.
package main

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/PUCETEC-PROG2/proyecto-final-grupo-8-tienda-scooters/internal/config"
	"github.com/PUCETEC-PROG2/proyecto-final-grupo-8-tienda-scooters/internal/dto"
	"github.com/PUCETEC-PROG2/proyecto-final-grupo-8-tienda-scooters/internal/infra"
	"github.com/PUCETEC-PROG2/proyecto-final-grupo-8-tienda-scooters/internal/repository"
	"github.com/PUCETEC-PROG2/proyecto-final-grupo-8-tienda-scooters/internal/service"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

var catalogo = []struct {
	nombre string
	precio string
	stock  int
}{
	{"Scooter eléctrico E-200", "899.90", 5},
	{"Scooter urbano Classic 125", "1450.00", 2},
	{"Casco integral", "65.50", 20},
	{"Candado en U", "24.99", 30},
	{"Luz LED delantera", "12.00", 40},
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	db, err := infra.NewDatabase(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	ctx := context.Background()
	productoRepo := repository.NewProductoRepository(db)
	productoSvc := service.NewProductoService(productoRepo)
	inventarioSvc := service.NewInventarioService(repository.NewInventarioRepository(db))
	clienteRepo := repository.NewClienteRepository(db)
	clienteSvc := service.NewClienteService(clienteRepo)

	for _, item := range catalogo {
		existentes, _, err := productoRepo.List(ctx, dto.ProductoFilter{Nombre: item.nombre, Page: 1, Limit: 1})
		if err != nil {
			log.Fatal().Err(err).Msg("list productos")
		}
		if len(existentes) > 0 {
			log.Info().Str("producto", item.nombre).Msg("ya existe, se omite")
			continue
		}

		precio := decimal.RequireFromString(item.precio)
		p, err := productoSvc.Crear(ctx, dto.CrearProductoRequest{Nombre: item.nombre, Precio: &precio})
		if err != nil {
			log.Fatal().Err(err).Str("producto", item.nombre).Msg("crear producto")
		}
		if _, err := inventarioSvc.Crear(ctx, dto.CrearInventarioRequest{ProductoID: p.ID, Cantidad: item.stock}); err != nil {
			log.Fatal().Err(err).Str("producto", item.nombre).Msg("crear inventario")
		}
		log.Info().Uint("id", p.ID).Str("producto", item.nombre).Msg("producto creado")
	}

	const cedulaDemo = "1710034065"
	_, err = clienteRepo.FindByCedula(ctx, cedulaDemo)
	switch {
	case err == nil:
		log.Info().Str("cedula", cedulaDemo).Msg("cliente demo ya existe")
	case errors.Is(err, repository.ErrNoEncontrado):
		c, err := clienteSvc.Crear(ctx, dto.CrearClienteRequest{
			Nombre:    "Cliente",
			Apellido:  "Demo",
			Direccion: "Av. Amazonas N24-03",
			Correo:    "demo@tiendascooters.ec",
			Cedula:    cedulaDemo,
			Telefono:  "0991234567",
		})
		if err != nil {
			log.Fatal().Err(err).Msg("crear cliente demo")
		}
		log.Info().Uint("id", c.ID).Msg("cliente demo creado")
	default:
		log.Fatal().Err(err).Msg("buscar cliente demo")
	}
}
