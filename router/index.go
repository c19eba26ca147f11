package router

import (
	"prephub_backend/handler"
	"prephub_backend/middleware"
	"prephub_backend/validate"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1", logger.New())

	auth := v1.Group("/auth")
	auth.Post("/signup", validate.Signup(), handler.Signup)
	auth.Post("/signin", validate.Signin(), handler.Signin)
	auth.Post("/refresh-token", handler.RefreshToken)
	auth.Post("/signout", middleware.Protected(), handler.Signout)
	auth.Get("/me", middleware.Protected(), handler.Me)

	user := v1.Group("/users", logger.New())
	user.Get("/me", middleware.Protected(), handler.Me)
	user.Put("/me", middleware.Protected(), validate.UpdateProfile(), handler.UpdateProfile)
	user.Post("/me/avatar", middleware.Protected(), handler.UploadProfileImage)
	user.Get("/", middleware.Protected(), handler.GetUsers)
	user.Patch("/:userId/approve-lister", middleware.Protected(), validate.GetById("userId"), validate.ApproveLister(), handler.ApproveLister)
	user.Patch("/:userId/role", middleware.Protected(), validate.GetById("userId"), validate.UpdateRole(), handler.UpdateUserRole)
	user.Get("/:userId", middleware.Protected(), validate.GetById("userId"), handler.GetUserById)

	listing := v1.Group("/listings", logger.New())
	listing.Get("/", handler.GetListings)
	listing.Get("/slug/:slug", handler.GetListingBySlug)
	listing.Get("/admin/all", middleware.Protected(), handler.AdminGetAllListings)
	listing.Get("/admin/:listingId", middleware.Protected(), validate.GetById("listingId"), handler.AdminGetListingDetails)
	listing.Put("/admin/:listingId", middleware.Protected(), validate.GetById("listingId"), validate.EditListing(), handler.AdminEditListing)
	listing.Post("/", middleware.Protected(), validate.CreateListing(), handler.CreateListing)
	listing.Get("/:listingId", validate.GetById("listingId"), handler.GetListingById)
	listing.Put("/:listingId", middleware.Protected(), validate.GetById("listingId"), validate.EditListing(), handler.EditListing)
	listing.Delete("/:listingId", middleware.Protected(), validate.GetById("listingId"), handler.DeleteListing)
	listing.Post("/:listingId/media", middleware.Protected(), validate.GetById("listingId"), handler.UploadListingImage)

	faculty := v1.Group("/faculty", logger.New())
	faculty.Get("/", handler.GetFaculty)
	faculty.Post("/", middleware.Protected(), validate.CreateFaculty(), handler.CreateFaculty)
	faculty.Post("/create-bulk", middleware.Protected(), validate.CreateFacultyBulk(), handler.CreateFacultyBulk)
	faculty.Get("/:facultyId", validate.GetById("facultyId"), handler.GetFacultyById)
	faculty.Put("/:facultyId", middleware.Protected(), validate.GetById("facultyId"), validate.EditFaculty(), handler.EditFaculty)
	faculty.Delete("/:facultyId", middleware.Protected(), validate.GetById("facultyId"), handler.DeleteFaculty)
	faculty.Post("/:facultyId/media", middleware.Protected(), validate.GetById("facultyId"), handler.UploadFacultyImage)

	booking := v1.Group("/bookings", logger.New())
	booking.Get("/payment-info", middleware.Protected(), handler.GetPaymentInfo)
	booking.Get("/payment-info/qr", middleware.Protected(), handler.GetPaymentInfoQR)
	booking.Get("/admin/all", middleware.Protected(), handler.AdminGetAllBookings)
	booking.Get("/admin/settings", middleware.Protected(), handler.GetAdminSettings)
	booking.Put("/admin/settings", middleware.Protected(), validate.UpdateAdminSettings(), handler.UpdateAdminSettings)
	booking.Patch("/admin/:bookingId/verify-payment", middleware.Protected(), validate.GetById("bookingId"), validate.VerifyPayment(), handler.VerifyPayment)
	booking.Get("/", middleware.Protected(), handler.GetBookings)
	booking.Post("/", middleware.Protected(), validate.CreateBooking(), handler.CreateBooking)
	booking.Get("/:bookingId", middleware.Protected(), validate.GetById("bookingId"), handler.GetBookingById)
	booking.Put("/:bookingId", middleware.Protected(), validate.GetById("bookingId"), validate.EditBooking(), handler.EditBooking)
	booking.Delete("/:bookingId", middleware.Protected(), validate.GetById("bookingId"), handler.DeleteBooking)
	booking.Post("/:bookingId/payment", middleware.Protected(), validate.GetById("bookingId"), validate.PaymentProof(), handler.UploadPaymentProof)
	booking.Post("/:bookingId/payment/screenshot", middleware.Protected(), validate.GetById("bookingId"), handler.UploadPaymentScreenshot)
	booking.Patch("/:bookingId/status", middleware.Protected(), validate.GetById("bookingId"), validate.BookingStatus(), handler.UpdateBookingStatus)

	analytics := v1.Group("/analytics", logger.New())
	analytics.Get("/dashboard", middleware.Protected(), validate.Period(), handler.GetDashboardAnalytics)
	analytics.Get("/owner", middleware.Protected(), validate.Period(), handler.GetOwnerAnalytics)
}
