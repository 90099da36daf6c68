package api

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/money-manager/internal/handlers/v1/account"
	"github.com/carson-networks/money-manager/internal/handlers/v1/status"
	"github.com/carson-networks/money-manager/internal/handlers/v1/transaction"
	"github.com/carson-networks/money-manager/internal/logging"
	"github.com/carson-networks/money-manager/internal/service"
)

type Rest struct {
	Logger  *logrus.Logger
	Port    string
	Service *service.Service
}

func (r *Rest) Serve() {
	mux := http.NewServeMux()

	statusHandler := status.NewHandler()
	mux.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))

	humaAPI := humago.New(mux, huma.DefaultConfig("money-manager", "1.0.0"))
	humaAPI.UseMiddleware(logging.HumaMiddleware(r.Logger))

	account.NewListAccountsHandler(r.Service.Account).Register(humaAPI)
	account.NewCreateAccountHandler(r.Service.Account).Register(humaAPI)
	account.NewTransferHandler(r.Service.Account).Register(humaAPI)

	transaction.NewAddTransactionHandler(r.Service.Transaction).Register(humaAPI)
	transaction.NewEditTransactionHandler(r.Service.Transaction).Register(humaAPI)
	transaction.NewCanEditHandler(r.Service.Transaction).Register(humaAPI)
	transaction.NewListTransactionsHandler(r.Service.Transaction).Register(humaAPI)
	transaction.NewMonthlyQueryHandler(r.Service.Transaction).Register(humaAPI)
	transaction.NewWeeklyQueryHandler(r.Service.Transaction).Register(humaAPI)
	transaction.NewYearlyQueryHandler(r.Service.Transaction).Register(humaAPI)
	transaction.NewFilterQueryHandler(r.Service.Transaction).Register(humaAPI)
	transaction.NewCategorySummaryHandler(r.Service.Transaction).Register(humaAPI)
	transaction.NewConstantsHandler().Register(humaAPI)

	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           mux,
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	r.Logger.Info("HttpServer.Serve.listening")
	err := server.ListenAndServe()
	if err != nil {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
	}
	r.Logger.Info("HttpServer.Serve.shutting down")
}
