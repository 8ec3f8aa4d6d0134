package main

import (
	"quicksell/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.UserModel{},
		model.ProfileModel{},
		model.DeviceModel{},
		model.LocationModel{},
		model.CategoryModel{},
		model.ListingModel{},
		model.ChatModel{},
		model.MessageModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
