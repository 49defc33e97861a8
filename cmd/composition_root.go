package cmd

import (
	"log/slog"
	"strings"

	"driverops/internal/adapters/in/kafka"
	"driverops/internal/adapters/out/postgres"
	"driverops/internal/adapters/out/ws"
	"driverops/internal/core/application/usecases/commands"
	"driverops/internal/core/application/usecases/queries"
	"driverops/internal/core/domain/services"
	"driverops/internal/jobs"

	kafkago "github.com/segmentio/kafka-go"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	gate       *commands.TransitionGate
	hub        *ws.Hub
	logger     *slog.Logger
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		gate:       commands.NewTransitionGate(),
		hub:        ws.NewHub(logger),
		logger:     logger,
	}
}

// Hub returns the websocket hub used both as the StatusNotifier and as the
// /ws/drivers/:id route handler.
func (c *CompositionRoot) Hub() *ws.Hub {
	return c.hub
}

func (c *CompositionRoot) CreateAcceptOrderCommandHandler() commands.AcceptOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAcceptOrderCommandHandler(f)
}

func (c *CompositionRoot) CreatePerformActionCommandHandler() commands.PerformActionCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPerformActionCommandHandler(f, c.gate, c.hub)
}

func (c *CompositionRoot) CreateConfirmPickupCommandHandler() commands.ConfirmPickupCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewConfirmPickupCommandHandler(f, c.gate, c.hub)
}

func (c *CompositionRoot) CreateConfirmDeliveryCommandHandler() commands.ConfirmDeliveryCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewConfirmDeliveryCommandHandler(f, c.gate, c.hub)
}

func (c *CompositionRoot) CreateReconcileStatusCommandHandler() commands.ReconcileStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReconcileStatusCommandHandler(
		f, services.NewStatusReconciler(), c.gate, c.hub)
}

func (c *CompositionRoot) CreateGetActiveOrdersQueryHandler() queries.GetActiveOrdersQueryHandler {
	return queries.NewGetActiveOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderWorkflowQueryHandler() queries.GetOrderWorkflowQueryHandler {
	return queries.NewGetOrderWorkflowQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateAuditActiveOrdersQueryHandler() queries.AuditActiveOrdersQueryHandler {
	return queries.NewAuditActiveOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateAuditActiveOrdersQueryHandler(), c.logger)
}

// CreateStatusFeedConsumer wires the Kafka reader for the authoritative
// status feed to the reconciliation handler.
func (c *CompositionRoot) CreateStatusFeedConsumer(config Config) *kafka.StatusFeedConsumer {
	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers: strings.Split(config.KafkaHost, ","),
		GroupID: config.KafkaConsumerGroup,
		Topic:   config.KafkaStatusFeedTopic,
	})
	return kafka.NewStatusFeedConsumer(reader, c.CreateReconcileStatusCommandHandler(), c.logger)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
