package main

import (
	"farmlink/internal/infra/persistence/model"

	"gorm.io/gen"
)

// Generates typed query helpers for every persisted model.
func main() {
	g := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
		Mode:    gen.WithDefaultQuery | gen.WithQueryInterface,
	})

	g.ApplyBasic(model.All()...)

	g.Execute()
}
