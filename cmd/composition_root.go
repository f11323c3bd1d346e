package cmd

import (
	"context"

	httpin "logistics/internal/adapters/in/http"
	"logistics/internal/adapters/out/gdex"
	"logistics/internal/adapters/out/postgres"
	"logistics/internal/adapters/out/postgres/settingsrepo"
	"logistics/internal/adapters/out/smtp"
	"logistics/internal/adapters/out/xlsx"
	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/consignment"
	"logistics/internal/jobs"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	logger     *zap.Logger
}

func NewCompositionRoot(cfg Config, gormDB *gorm.DB, logger *zap.Logger) CompositionRoot {
	return CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
	}
}

// SeedCarrierSettings copies the non-empty GDEX_* values into the settings
// store, keeping values that were already stored.
func (c *CompositionRoot) SeedCarrierSettings(ctx context.Context) error {
	repo := settingsrepo.NewGormSettingsRepository(c.gormDB)
	seed := map[string]string{
		consignment.KeyAPIToken:        c.cfg.GDEXAPIToken,
		consignment.KeyAccountNo:       c.cfg.GDEXAccountNo,
		consignment.KeySubscriptionKey: c.cfg.GDEXSubscriptionKey,
		consignment.KeyUseSandbox:      c.cfg.GDEXUseSandbox,
	}

	for key, value := range seed {
		if value == "" {
			continue
		}
		written, err := repo.PutIfAbsent(ctx, key, value)
		if err != nil {
			return err
		}
		if written {
			c.logger.Info("seeded carrier setting", zap.String("key", key))
		}
	}
	return nil
}

func (c *CompositionRoot) CreateRegisterShipmentCommandHandler() *commands.RegisterShipmentCommandHandler {
	h := commands.NewRegisterShipmentCommandHandler(c.shipmentUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateSubmitConsignmentCommandHandler() *commands.SubmitConsignmentCommandHandler {
	h := commands.NewSubmitConsignmentCommandHandler(
		c.shipmentUoWFactory(),
		settingsrepo.NewGormSettingsRepository(c.gormDB),
		c.CreateConsignmentGateway(),
		c.logger,
	)
	return &h
}

func (c *CompositionRoot) CreateUpdateCarrierSettingsCommandHandler() *commands.UpdateCarrierSettingsCommandHandler {
	var f commands.SettingsUoWFactory = FuncSettingsUoWFactory(func() commands.SettingsUoW {
		return c.uowFactory.Create()
	})
	h := commands.NewUpdateCarrierSettingsCommandHandler(f)
	return &h
}

func (c *CompositionRoot) CreateCreateComplaintCommandHandler() *commands.CreateComplaintCommandHandler {
	h := commands.NewCreateComplaintCommandHandler(c.complaintUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateChangeComplaintStatusCommandHandler() *commands.ChangeComplaintStatusCommandHandler {
	h := commands.NewChangeComplaintStatusCommandHandler(c.complaintUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateSendComplaintReportCommandHandler() *commands.SendComplaintReportCommandHandler {
	h := commands.NewSendComplaintReportCommandHandler(
		c.complaintUoWFactory(),
		xlsx.NewComplaintWorkbookRenderer(),
		smtp.NewMailer(smtp.Config{
			Host:      c.cfg.SMTPHost,
			Port:      c.cfg.SMTPPort,
			Username:  c.cfg.SMTPUsername,
			Password:  c.cfg.SMTPPassword,
			From:      c.cfg.SMTPFrom,
			TLSPolicy: c.cfg.SMTPTLSPolicy,
		}, c.logger),
		c.logger,
	)
	return &h
}

func (c *CompositionRoot) CreateGetShipmentQueryHandler() queries.GetShipmentQueryHandler {
	return queries.NewGetShipmentQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListComplaintsQueryHandler() queries.ListComplaintsQueryHandler {
	return queries.NewListComplaintsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateConsignmentGateway() *gdex.Client {
	opts := []gdex.Option{gdex.WithTimeout(c.cfg.GDEXTimeout)}
	if c.cfg.GDEXBaseURL != "" {
		opts = append(opts, gdex.WithBaseURL(c.cfg.GDEXBaseURL))
	}
	return gdex.NewClient(c.logger, opts...)
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(httpin.Handlers{
		RegisterShipment:      c.CreateRegisterShipmentCommandHandler(),
		SubmitConsignment:     c.CreateSubmitConsignmentCommandHandler(),
		UpdateCarrierSettings: c.CreateUpdateCarrierSettingsCommandHandler(),
		CreateComplaint:       c.CreateCreateComplaintCommandHandler(),
		ChangeComplaintStatus: c.CreateChangeComplaintStatusCommandHandler(),
		SendComplaintReport:   c.CreateSendComplaintReportCommandHandler(),
		GetShipment:           c.CreateGetShipmentQueryHandler(),
		ListComplaints:        c.CreateListComplaintsQueryHandler(),
	}, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(jobs.NewComplaintReportJob(
		c.CreateSendComplaintReportCommandHandler(),
		c.cfg.ReportCron,
		c.cfg.ReportRecipient,
		c.logger,
	))
}

func (c *CompositionRoot) shipmentUoWFactory() commands.ShipmentUoWFactory {
	return FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) complaintUoWFactory() commands.ComplaintUoWFactory {
	return FuncComplaintUoWFactory(func() commands.ComplaintUoW {
		return c.uowFactory.Create()
	})
}

type FuncShipmentUoWFactory func() commands.ShipmentUoW

func (f FuncShipmentUoWFactory) Create() commands.ShipmentUoW {
	return f()
}

type FuncSettingsUoWFactory func() commands.SettingsUoW

func (f FuncSettingsUoWFactory) Create() commands.SettingsUoW {
	return f()
}

type FuncComplaintUoWFactory func() commands.ComplaintUoW

func (f FuncComplaintUoWFactory) Create() commands.ComplaintUoW {
	return f()
}
