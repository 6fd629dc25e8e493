package router

import (
	"time"

	"github.com/PUCETEC-PROG2/proyecto-final-grupo-8-tienda-scooters/internal/config"
	"github.com/PUCETEC-PROG2/proyecto-final-grupo-8-tienda-scooters/internal/handler"
	"github.com/PUCETEC-PROG2/proyecto-final-grupo-8-tienda-scooters/internal/middleware"
	"github.com/PUCETEC-PROG2/proyecto-final-grupo-8-tienda-scooters/internal/repository"
	"github.com/PUCETEC-PROG2/proyecto-final-grupo-8-tienda-scooters/internal/service"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB
func New(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(cfg.RateLimitPerMin, time.Minute))

	// ── Repositories ─────────────────────────────────────────────────────────
	clienteRepo := repository.NewClienteRepository(db)
	productoRepo := repository.NewProductoRepository(db)
	inventarioRepo := repository.NewInventarioRepository(db)
	compraRepo := repository.NewCompraRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	clienteSvc := service.NewClienteService(clienteRepo)
	productoSvc := service.NewProductoService(productoRepo)
	inventarioSvc := service.NewInventarioService(inventarioRepo)
	compraSvc := service.NewCompraService(compraRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	clientesH := handler.NewClientesHandler(clienteSvc)
	productosH := handler.NewProductosHandler(productoSvc)
	inventarioH := handler.NewInventarioHandler(inventarioSvc)
	comprasH := handler.NewComprasHandler(compraSvc)

	// ── Routes ───────────────────────────────────────────────────────────────
	r.GET("/health", handler.Health(db))

	v1 := r.Group("/v1")
	{
		clientes := v1.Group("/clientes")
		{
			clientes.POST("", clientesH.Crear)
			clientes.GET("", clientesH.Listar)
			clientes.GET("/:id", clientesH.ObtenerPorID)
			clientes.PATCH("/:id", clientesH.Actualizar)
			clientes.DELETE("/:id", clientesH.Eliminar)
		}

		prods := v1.Group("/productos")
		{
			prods.POST("", productosH.Crear)
			prods.GET("", productosH.Listar)
			prods.GET("/:id", productosH.ObtenerPorID)
			prods.PATCH("/:id", productosH.Actualizar)
			prods.DELETE("/:id", productosH.Eliminar)
		}

		inv := v1.Group("/inventario")
		{
			inv.POST("", inventarioH.Crear)
			inv.GET("", inventarioH.Listar)
			inv.GET("/:id", inventarioH.ObtenerPorID)
			inv.PATCH("/:id", inventarioH.Actualizar)
			inv.DELETE("/:id", inventarioH.Eliminar)
		}

		compras := v1.Group("/compras")
		{
			compras.POST("", comprasH.Crear)
			compras.GET("", comprasH.Listar)
			compras.GET("/:id", comprasH.ObtenerPorID)
			compras.PATCH("/:id", comprasH.Actualizar)
			compras.DELETE("/:id", comprasH.Eliminar)
			compras.GET("/:id/total", comprasH.Total)
			compras.GET("/:id/detalles", comprasH.ListarDetalles)
			compras.POST("/:id/detalles", comprasH.AgregarDetalle)
		}

		detalles := v1.Group("/detalles")
		{
			detalles.PATCH("/:id", comprasH.ActualizarDetalle)
			detalles.DELETE("/:id", comprasH.EliminarDetalle)
		}
	}

	// Swagger UI, only outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
