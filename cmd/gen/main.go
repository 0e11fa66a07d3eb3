package main

import (
	"confusion/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.UserModel{},
		model.AuthenticationModel{},
		model.SessionModel{},
		model.DishModel{},
		model.CommentModel{},
		model.PromotionModel{},
		model.LeaderModel{},
		model.FavoriteListModel{},
		model.FavoriteEntryModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
