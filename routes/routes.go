package routes

import (
	"campuseats-be/controllers"
	"campuseats-be/middlewares"
	"campuseats-be/repository"
	"campuseats-be/services"
	"campuseats-be/ws"

	"github.com/gin-gonic/gin"
)

type Deps struct {
	JWTSecret string
	Admins    *repository.AdminRepository

	Auth     *controllers.AuthController
	Menu     *controllers.MenuController
	Cart     *controllers.CartController
	Order    *controllers.OrderController
	Shop     *controllers.ShopController
	Delivery *controllers.DeliveryController
	AdmMenu  *controllers.AdminMenuController
	Admin    *controllers.AdminController
	Hub      *ws.Hub
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	user := middlewares.RequireUser(d.JWTSecret)
	activeAdmin := middlewares.RequireActiveAdmin(d.Admins)

	api := r.Group("/api")

	// Auth (public)
	api.POST("/sign-up", d.Auth.SignUp)
	api.POST("/sign-in", d.Auth.SignIn)
	api.POST("/sign-out", d.Auth.SignOut)
	api.POST("/auth/forgot-password", d.Auth.ForgotPassword)
	api.POST("/auth/reset-password", d.Auth.ResetPassword)
	api.GET("/me", user, d.Auth.Me)

	// Storefront (public)
	api.GET("/menu", d.Menu.GetMenu)
	api.GET("/menu/items/:itemId", d.Menu.ItemDetail)
	api.GET("/shop-status", d.Shop.Get)
	api.GET("/delivery-locations", d.Delivery.ListPublic)
	api.GET("/delivery-locations/:slug", d.Delivery.GetBySlug)
	api.GET("/payment-qr.png", d.Order.PaymentQR)

	// Cart + orders (authenticated)
	cart := api.Group("/cart", user)
	{
		cart.GET("", d.Cart.Get)
		cart.POST("", d.Cart.Add)
		cart.POST("/bulk", d.Cart.BulkAdd)
		cart.POST("/set-menu", d.Cart.AddSetMenu)
		cart.PATCH("/items", d.Cart.UpdateQty)
		cart.DELETE("/items/:itemId", d.Cart.RemoveLine)
		cart.DELETE("", d.Cart.Clear)
	}
	api.POST("/checkout", user, d.Order.Checkout)
	api.GET("/orders", user, d.Order.List)
	api.GET("/orders/:orderId", user, d.Order.Detail)
	api.POST("/orders/:orderId/payment", user, d.Order.SubmitPayment)

	// Realtime refresh hints
	api.GET("/ws", user, d.Hub.HandleWebSocket)

	// Admin back office
	admin := api.Group("/admin", user, activeAdmin)
	{
		menu := admin.Group("/menu", middlewares.RequirePermission(services.CapManageMenu))
		{
			menu.GET("", d.AdmMenu.GetMenu)
			menu.POST("/categories", d.AdmMenu.CreateCategory)
			menu.PATCH("/categories/:categoryId", d.AdmMenu.UpdateCategory)
			menu.POST("/categories/reorder", d.AdmMenu.ReorderCategories)
			menu.POST("/categories/:categoryId/items/reorder", d.AdmMenu.ReorderItems)
			menu.POST("/items", d.AdmMenu.CreateItem)
			menu.PATCH("/items/:itemId", d.AdmMenu.UpdateItem)
			menu.POST("/items/:itemId/pools", d.AdmMenu.LinkPool)
			menu.DELETE("/items/:itemId/pools/:poolId", d.AdmMenu.UnlinkPool)
			menu.POST("/pools", d.AdmMenu.CreatePool)
			menu.POST("/pools/reorder", d.AdmMenu.ReorderPools)
			menu.POST("/pools/:poolId/duplicate", d.AdmMenu.DuplicatePool)
			menu.POST("/pools/:poolId/options", d.AdmMenu.CreateOption)
			menu.POST("/pools/:poolId/options/reorder", d.AdmMenu.ReorderOptions)
			menu.DELETE("/options/:optionId", d.AdmMenu.DeleteOption)
		}

		// stock toggling is open to moderators
		admin.PATCH("/menu/items/:itemId/availability",
			middlewares.RequirePermission(services.CapToggleStock), d.AdmMenu.ToggleAvailability)

		admin.GET("/settings/shop", middlewares.RequirePermission(services.CapManageShop), d.Shop.Get)
		admin.POST("/settings/shop", middlewares.RequirePermission(services.CapManageShop), d.Shop.Set)

		delivery := admin.Group("/delivery-locations", middlewares.RequirePermission(services.CapManageDelivery))
		{
			delivery.GET("", d.Delivery.ListAdmin)
			delivery.POST("", d.Delivery.Create)
			delivery.PATCH("/:locationId", d.Delivery.Update)
			delivery.DELETE("/:locationId", d.Delivery.Delete)
		}

		orders := admin.Group("", middlewares.RequirePermission(services.CapManageOrders))
		{
			orders.GET("/orders", d.Admin.ListOrders)
			orders.PATCH("/orders/:orderId/status", d.Admin.UpdateOrderStatus)
		}
		admin.PATCH("/payments/:paymentId",
			middlewares.RequirePermission(services.CapVerifyPayments), d.Admin.VerifyPayment)

		admin.GET("/list", middlewares.RequirePermission(services.CapManageAdmins), d.Admin.List)
		admin.POST("/add", middlewares.RequireSuperAdmin(), d.Admin.Add)
		admin.DELETE("/remove", middlewares.RequireSuperAdmin(), d.Admin.Remove)
	}
}
