package order

import (
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"framerly/internal/config"
	"framerly/internal/order/controller"
	orderrepo "framerly/internal/order/repository"
)

func NewModule(db *mongo.Database, cfg *config.Config, logger *zap.Logger) *controller.OrderController {
	repo := orderrepo.NewMongoOrderRepository(db, cfg.Database.QueryTimeout)
	return controller.NewOrderController(repo, logger)
}
