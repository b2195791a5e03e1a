package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"radagast/internal/checkout"
	"radagast/internal/client"
	"radagast/internal/infrastructure/metrics"
	"radagast/internal/invoice"
	"radagast/internal/product"
)

func NewRouter(
	clientCtrl *client.Controller,
	productCtrl *product.Controller,
	checkoutCtrl *checkout.Controller,
	invoiceCtrl *invoice.Controller,
	serverMetrics *metrics.ServerMetrics,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)

	r.Method(http.MethodPost, "/clients",
		serverMetrics.Middleware("add_client", http.HandlerFunc(clientCtrl.HandleAddClient)))
	r.Method(http.MethodPost, "/products",
		serverMetrics.Middleware("add_product", http.HandlerFunc(productCtrl.HandleAddProduct)))
	r.Method(http.MethodPost, "/checkout",
		serverMetrics.Middleware("place_order", http.HandlerFunc(checkoutCtrl.HandlePlaceOrder)))
	r.Method(http.MethodGet, "/invoice/{id}",
		serverMetrics.Middleware("find_invoice", http.HandlerFunc(invoiceCtrl.HandleFindInvoice)))

	r.Handle("/metrics", metrics.Handler())

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	logger.Info("router initialized")

	return r
}
