package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/megaar/comercial-api/internal/application/analytics"
	"github.com/megaar/comercial-api/internal/application/auth"
	"github.com/megaar/comercial-api/internal/application/authz"
	"github.com/megaar/comercial-api/internal/application/catalog"
	"github.com/megaar/comercial-api/internal/application/fulfillment"
	"github.com/megaar/comercial-api/internal/application/inquiry"
	"github.com/megaar/comercial-api/internal/application/notification"
	"github.com/megaar/comercial-api/internal/application/procurement"
	"github.com/megaar/comercial-api/internal/application/usecase"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	ClientUC      *usecase.ClientUseCase
	ProductUC     *usecase.ProductUseCase
	SupplierUC    *usecase.SupplierUseCase
	EmployeeUC    *usecase.EmployeeUseCase
	InquiryUC     *inquiry.UseCase
	FulfillmentUC *fulfillment.UseCase
	OrderPDF      *fulfillment.PDFUseCase
	ProcurementUC *procurement.UseCase
	CatalogUC     *catalog.UseCase
	DashboardUC   *analytics.DashboardUseCase
	Dispatcher    *notification.Dispatcher
	JWTSecret     string
}

// Router regista as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rotas protegidas (requerem Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Clients (pessoal comercial)
	clients := protected.Group("/clients", RequirePermission(authz.OpManageClients))
	clientHandler := NewClientHandler(deps.ClientUC)
	clients.Post("/", clientHandler.Create)
	clients.Get("/", clientHandler.List)
	clients.Get("/:id", clientHandler.GetByID)
	clients.Put("/:id", clientHandler.Update)

	// Products (pessoal de stock)
	products := protected.Group("/products", RequirePermission(authz.OpManageProducts))
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Suppliers (pessoal de stock)
	suppliers := protected.Group("/suppliers", RequirePermission(authz.OpManageSuppliers))
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)

	// Employees (admin e gestão)
	employees := protected.Group("/employees", RequirePermission(authz.OpManageEmployees))
	employeeHandler := NewEmployeeHandler(deps.EmployeeUC)
	employees.Post("/", employeeHandler.Create)
	employees.Get("/", employeeHandler.List)
	employees.Delete("/:id", employeeHandler.Delete)

	// Inquiries (partilhado entre pessoal e clientes)
	inquiries := protected.Group("/inquiries")
	inquiryHandler := NewInquiryHandler(deps.InquiryUC)
	inquiries.Post("/", RequirePermission(authz.OpCreateInquiry), inquiryHandler.Create)
	inquiries.Get("/", RequirePermission(authz.OpCreateInquiry), inquiryHandler.List)
	inquiries.Post("/:id/status", RequireAnyPermission(authz.OpAdvanceInquiry, authz.OpDeclareInterest), inquiryHandler.UpdateStatus)
	inquiries.Post("/:id/convert", RequirePermission(authz.OpConvertInquiry), inquiryHandler.Convert)

	// Sales (emissão pelo pessoal, receção pelo cliente)
	sales := protected.Group("/sales")
	salesHandler := NewSalesHandler(deps.FulfillmentUC, deps.OrderPDF)
	sales.Post("/", RequirePermission(authz.OpCreateSale), salesHandler.Create)
	sales.Get("/", RequirePermission(authz.OpViewSales), salesHandler.List)
	sales.Post("/:id/receipt", RequirePermission(authz.OpConfirmReceipt), salesHandler.ConfirmReceipt)
	sales.Post("/:id/payment", RequirePermission(authz.OpConfirmPayment), salesHandler.ConfirmPayment)
	sales.Get("/:id/pdf", RequirePermission(authz.OpViewSales), salesHandler.PDF)

	// Purchases (pessoal de stock)
	purchases := protected.Group("/purchases")
	purchaseHandler := NewPurchaseHandler(deps.ProcurementUC)
	purchases.Post("/", RequirePermission(authz.OpManagePurchases), purchaseHandler.Create)
	purchases.Get("/", RequirePermission(authz.OpManagePurchases), purchaseHandler.List)
	purchases.Post("/:id/receive", RequirePermission(authz.OpReceiveStock), purchaseHandler.Receive)

	// Catalog personalizado
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	protected.Get("/catalog", RequirePermission(authz.OpViewCatalog), catalogHandler.List)

	// Notifications
	notifications := protected.Group("/notifications", RequirePermission(authz.OpViewNotifications))
	notificationHandler := NewNotificationHandler(deps.Dispatcher)
	notifications.Get("/", notificationHandler.List)
	notifications.Get("/unread-count", notificationHandler.Unread)
	notifications.Post("/", RequirePermission(authz.OpSendNotification), notificationHandler.Send)
	notifications.Post("/read-all", notificationHandler.MarkAllRead)
	notifications.Post("/:id/read", notificationHandler.MarkRead)

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard", RequirePermission(authz.OpViewDashboard), dashboardHandler.Summary)
}
