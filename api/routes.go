package api

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/expense-server/internal/handlers/v1/expense"
	"github.com/carson-networks/expense-server/internal/handlers/v1/identity"
	"github.com/carson-networks/expense-server/internal/handlers/v1/status"
	"github.com/carson-networks/expense-server/internal/logging"
	"github.com/carson-networks/expense-server/internal/service"
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

	humaAPI := humago.New(mux, huma.DefaultConfig("expense-server", "1.0.0"))
	humaAPI.UseMiddleware(logging.Middleware(r.Logger))

	auth := identity.NewAuthenticator(r.Service.Identity)

	identity.NewRegisterHandler(r.Service.Identity).Register(humaAPI)
	identity.NewLoginHandler(r.Service.Identity).Register(humaAPI)

	expense.NewCreateExpenseHandler(r.Service.Expense, auth).Register(humaAPI)
	expense.NewListExpensesHandler(r.Service.Expense, auth).Register(humaAPI)
	expense.NewGetExpenseHandler(r.Service.Expense, auth).Register(humaAPI)
	expense.NewUpdateExpenseHandler(r.Service.Expense, auth).Register(humaAPI)
	expense.NewDeleteExpenseHandler(r.Service.Expense, auth).Register(humaAPI)

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
