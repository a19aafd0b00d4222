// seed restablece los slots "products" y "categories" del backend configurado
// a los datos por defecto del tablero. Es la vía de reparación de un slot corrupto
// y la forma de migrar datos tras un cambio de formato.
//
// Uso: go run ./cmd/seed [products|categories]
// Sin argumentos restablece ambas colecciones. Lee la misma configuración que cmd/api.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/afero"

	"github.com/jhoicas/supermercado-dashboard/internal/infrastructure/recordstore"
	"github.com/jhoicas/supermercado-dashboard/internal/infrastructure/storage"
	"github.com/jhoicas/supermercado-dashboard/pkg/config"
	"github.com/jhoicas/supermercado-dashboard/pkg/logger"
)

func main() {
	target := "all"
	if len(os.Args) > 1 {
		target = os.Args[1]
	}
	if target != "all" && target != recordstore.ProductsSlot && target != recordstore.CategoriesSlot {
		fmt.Fprintf(os.Stderr, "Colección desconocida %q (products, categories)\n", target)
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})
	storeLog := log.Component("seed")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Sin fallback: escribir sobre un backend que descarta no tendría sentido.
	backend, err := storage.Open(ctx, cfg, afero.NewOsFs())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir almacenamiento %s: %v\n", cfg.Storage.Driver, err)
		os.Exit(1)
	}
	defer backend.Close()

	storeCfg := recordstore.Config{Namespace: cfg.Storage.Namespace, Logger: &storeLog}

	if target == "all" || target == recordstore.CategoriesSlot {
		cats, err := recordstore.NewCategoryStore(backend.Slots, storeCfg).Reset(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Restablecer categorías: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Categorías: %d registros escritos en %s\n", len(cats), recordstore.SlotKey(cfg.Storage.Namespace, recordstore.CategoriesSlot))
	}
	if target == "all" || target == recordstore.ProductsSlot {
		prods, err := recordstore.NewProductStore(backend.Slots, storeCfg).Reset(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Restablecer productos: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Productos: %d registros escritos en %s\n", len(prods), recordstore.SlotKey(cfg.Storage.Namespace, recordstore.ProductsSlot))
	}
}
