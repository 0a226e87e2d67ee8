package api

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	accounthandler "github.com/trustbank/ledger-server/internal/handlers/v1/account"
	ledgerhandler "github.com/trustbank/ledger-server/internal/handlers/v1/ledger"
	"github.com/trustbank/ledger-server/internal/handlers/v1/status"
	transactionhandler "github.com/trustbank/ledger-server/internal/handlers/v1/transaction"
	"github.com/trustbank/ledger-server/internal/logging"
	"github.com/trustbank/ledger-server/internal/service"
)

type Rest struct {
	Logger  *logrus.Logger
	Port    string
	Service *service.Service
}

// errorResponse is the caller-facing error model, {"error": "..."}. It never
// carries storage-layer detail.
type errorResponse struct {
	status  int
	Message string `json:"error" doc:"Error message"`
}

func (e *errorResponse) Error() string {
	return e.Message
}

func (e *errorResponse) GetStatus() int {
	return e.status
}

func init() {
	huma.NewError = func(status int, message string, errs ...error) huma.StatusError {
		return &errorResponse{status: status, Message: message}
	}
}

func (r *Rest) Serve() {
	mux := http.NewServeMux()

	humaAPI := humago.New(mux, huma.DefaultConfig("Trust Bank Ledger", "1.0.0"))
	humaAPI.UseMiddleware(logging.Middleware(r.Logger))

	ledgerhandler.NewTransferHandler(r.Service.Ledger).Register(humaAPI)
	ledgerhandler.NewDepositHandler(r.Service.Ledger).Register(humaAPI)
	ledgerhandler.NewPaymentHandler(r.Service.Ledger).Register(humaAPI)
	accounthandler.NewListAccountsHandler(r.Service.Ledger).Register(humaAPI)
	transactionhandler.NewListTransactionsHandler(r.Service.Ledger).Register(humaAPI)

	statusHandler := status.NewHandler()
	mux.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))

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
