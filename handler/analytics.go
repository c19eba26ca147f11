package handler

import (
	"errors"
	"time"

	"prephub_backend/constants"
	"prephub_backend/database"
	"prephub_backend/helper"
	"prephub_backend/model"
	"prephub_backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type trendBucket struct {
	label string
	from  time.Time
	to    time.Time
}

// trendBuckets slices the selected period into half-open [from, to) ranges.
// Daily buckets for a week, weekly for a month, monthly for a year.
func trendBuckets(period string, now time.Time) []trendBucket {
	var buckets []trendBucket

	switch period {
	case "week":
		day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		for i := 6; i >= 0; i-- {
			from := day.AddDate(0, 0, -i)
			buckets = append(buckets, trendBucket{
				label: from.Format("Mon"),
				from:  from,
				to:    from.AddDate(0, 0, 1),
			})
		}
	case "year":
		month := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		for i := 11; i >= 0; i-- {
			from := month.AddDate(0, -i, 0)
			buckets = append(buckets, trendBucket{
				label: from.Format("Jan"),
				from:  from,
				to:    from.AddDate(0, 1, 0),
			})
		}
	default: // month
		day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		for i := 3; i >= 0; i-- {
			from := day.AddDate(0, 0, -(i+1)*7+1)
			buckets = append(buckets, trendBucket{
				label: from.Format("Jan 2"),
				from:  from,
				to:    from.AddDate(0, 0, 7),
			})
		}
	}

	return buckets
}

func periodStart(period string, now time.Time) time.Time {
	switch period {
	case "week":
		return now.AddDate(0, 0, -7)
	case "year":
		return now.AddDate(-1, 0, 0)
	default:
		return now.AddDate(0, -1, 0)
	}
}

func countTrend(base func() *gorm.DB, buckets []trendBucket) []model.TrendPoint {
	points := make([]model.TrendPoint, 0, len(buckets))
	for _, b := range buckets {
		var count int64
		base().Where("created_at >= ? AND created_at < ?", b.from, b.to).Count(&count)
		points = append(points, model.TrendPoint{Label: b.label, Value: float64(count)})
	}
	return points
}

func sumTrend(base func() *gorm.DB, column string, buckets []trendBucket) []model.TrendPoint {
	points := make([]model.TrendPoint, 0, len(buckets))
	for _, b := range buckets {
		var sum float64
		base().Where("created_at >= ? AND created_at < ?", b.from, b.to).
			Select("COALESCE(SUM(" + column + "), 0)").Scan(&sum)
		points = append(points, model.TrendPoint{Label: b.label, Value: sum})
	}
	return points
}

// GetDashboardAnalytics is the admin overview: platform totals, period
// deltas, breakdowns and trend series.
func GetDashboardAnalytics(c *fiber.Ctx) error {
	_, user, isAdmin, _ := helper.GetInfoUserFromToken(c)
	if user == nil || !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	period := c.Locals("period").(string)
	db := database.DB
	now := time.Now()
	since := periodStart(period, now)
	prevSince := periodStart(period, since)

	var totalUsers, activeUsers, totalBookings, periodBookings, prevBookings int64
	var pendingListers, pendingBookings int64
	db.Model(&model.User{}).Count(&totalUsers)
	db.Model(&model.User{}).Where("is_active = ?", true).Count(&activeUsers)
	db.Model(&model.Booking{}).Count(&totalBookings)
	db.Model(&model.Booking{}).Where("created_at >= ?", since).Count(&periodBookings)
	db.Model(&model.Booking{}).Where("created_at >= ? AND created_at < ?", prevSince, since).Count(&prevBookings)
	db.Model(&model.User{}).Where("role IN ? AND is_approved_lister = ?", constants.ListerRoles, false).
		Count(&pendingListers)
	db.Model(&model.Booking{}).Where("status = ?", constants.BOOKING_PENDING).Count(&pendingBookings)

	var totalRevenue, periodRevenue, prevRevenue float64
	revenueBase := func() *gorm.DB {
		return db.Model(&model.Booking{}).Where("status = ?", constants.BOOKING_ACCEPTED)
	}
	revenueBase().Select("COALESCE(SUM(amount), 0)").Scan(&totalRevenue)
	revenueBase().Where("created_at >= ?", since).Select("COALESCE(SUM(amount), 0)").Scan(&periodRevenue)
	revenueBase().Where("created_at >= ? AND created_at < ?", prevSince, since).
		Select("COALESCE(SUM(amount), 0)").Scan(&prevRevenue)

	bookingsByStatus := map[string]int64{}
	for _, status := range []string{
		constants.BOOKING_PENDING, constants.BOOKING_WAITLIST, constants.BOOKING_ACCEPTED,
		constants.BOOKING_REJECTED, constants.BOOKING_CANCELLED,
	} {
		var count int64
		db.Model(&model.Booking{}).Where("status = ?", status).Count(&count)
		bookingsByStatus[status] = count
	}

	listingsByType := map[string]int64{}
	for _, listingType := range []string{"hostel", "coaching", "library", "tiffin"} {
		var count int64
		db.Model(&model.Listing{}).Where("type = ?", listingType).Count(&count)
		listingsByType[listingType] = count
	}

	buckets := trendBuckets(period, now)
	bookingTrend := countTrend(func() *gorm.DB { return db.Model(&model.Booking{}) }, buckets)
	signupTrend := countTrend(func() *gorm.DB { return db.Model(&model.User{}) }, buckets)
	revenueTrend := sumTrend(revenueBase, "amount", buckets)

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"period": period,
		"overview": fiber.Map{
			"totalUsers":      totalUsers,
			"activeUsers":     activeUsers,
			"totalBookings":   totalBookings,
			"periodBookings":  periodBookings,
			"bookingGrowth":   utils.CalculateGrowth(float64(periodBookings), float64(prevBookings)),
			"totalRevenue":    totalRevenue,
			"periodRevenue":   periodRevenue,
			"revenueGrowth":   utils.CalculateGrowth(periodRevenue, prevRevenue),
			"pendingListers":  pendingListers,
			"pendingBookings": pendingBookings,
		},
		"bookingsByStatus": bookingsByStatus,
		"listingsByType":   listingsByType,
		"trends": fiber.Map{
			"bookings": bookingTrend,
			"signups":  signupTrend,
			"revenue":  revenueTrend,
		},
	})
}

// GetOwnerAnalytics is the dashboard scoped to one lister's listings.
func GetOwnerAnalytics(c *fiber.Ctx) error {
	_, user, _, isLister := helper.GetInfoUserFromToken(c)
	if user == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.USER_NOT_FOUND, nil)
	}
	if !isLister {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_LISTER, errors.New("only lister roles have owner analytics"))
	}

	period := c.Locals("period").(string)
	db := database.DB
	now := time.Now()
	since := periodStart(period, now)
	prevSince := periodStart(period, since)

	ownBookings := func() *gorm.DB {
		return db.Model(&model.Booking{}).
			Joins("JOIN listings ON listings.id = bookings.listing_id").
			Where("listings.owner_id = ?", user.ID)
	}
	acceptedBookings := func() *gorm.DB {
		return ownBookings().Where("bookings.status = ?", constants.BOOKING_ACCEPTED)
	}

	var totalListings, totalBookings, periodBookings, prevBookings, pendingBookings, uniqueCustomers int64
	db.Model(&model.Listing{}).Where("owner_id = ?", user.ID).Count(&totalListings)
	ownBookings().Count(&totalBookings)
	ownBookings().Where("bookings.created_at >= ?", since).Count(&periodBookings)
	ownBookings().Where("bookings.created_at >= ? AND bookings.created_at < ?", prevSince, since).Count(&prevBookings)
	ownBookings().Where("bookings.status = ?", constants.BOOKING_PENDING).Count(&pendingBookings)
	ownBookings().Distinct("bookings.user_id").Count(&uniqueCustomers)

	var totalRevenue, periodRevenue, prevRevenue float64
	acceptedBookings().Select("COALESCE(SUM(bookings.amount), 0)").Scan(&totalRevenue)
	acceptedBookings().Where("bookings.created_at >= ?", since).
		Select("COALESCE(SUM(bookings.amount), 0)").Scan(&periodRevenue)
	acceptedBookings().Where("bookings.created_at >= ? AND bookings.created_at < ?", prevSince, since).
		Select("COALESCE(SUM(bookings.amount), 0)").Scan(&prevRevenue)

	var avgBookingValue float64
	if totalBookings > 0 {
		var totalAmount float64
		ownBookings().Select("COALESCE(SUM(bookings.amount), 0)").Scan(&totalAmount)
		avgBookingValue = totalAmount / float64(totalBookings)
	}

	bookingsByStatus := map[string]int64{}
	for _, status := range []string{
		constants.BOOKING_PENDING, constants.BOOKING_WAITLIST, constants.BOOKING_ACCEPTED,
		constants.BOOKING_REJECTED, constants.BOOKING_CANCELLED,
	} {
		var count int64
		ownBookings().Where("bookings.status = ?", status).Count(&count)
		bookingsByStatus[status] = count
	}

	buckets := trendBuckets(period, now)
	bookingTrend := make([]model.TrendPoint, 0, len(buckets))
	revenueTrend := make([]model.TrendPoint, 0, len(buckets))
	for _, b := range buckets {
		var count int64
		ownBookings().Where("bookings.created_at >= ? AND bookings.created_at < ?", b.from, b.to).Count(&count)
		bookingTrend = append(bookingTrend, model.TrendPoint{Label: b.label, Value: float64(count)})

		var sum float64
		acceptedBookings().Where("bookings.created_at >= ? AND bookings.created_at < ?", b.from, b.to).
			Select("COALESCE(SUM(bookings.amount), 0)").Scan(&sum)
		revenueTrend = append(revenueTrend, model.TrendPoint{Label: b.label, Value: sum})
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"period": period,
		"overview": fiber.Map{
			"totalListings":   totalListings,
			"totalBookings":   totalBookings,
			"periodBookings":  periodBookings,
			"bookingGrowth":   utils.CalculateGrowth(float64(periodBookings), float64(prevBookings)),
			"totalRevenue":    totalRevenue,
			"periodRevenue":   periodRevenue,
			"revenueGrowth":   utils.CalculateGrowth(periodRevenue, prevRevenue),
			"pendingBookings": pendingBookings,
			"uniqueCustomers": uniqueCustomers,
			"avgBookingValue": avgBookingValue,
		},
		"bookingsByStatus": bookingsByStatus,
		"trends": fiber.Map{
			"bookings": bookingTrend,
			"revenue":  revenueTrend,
		},
	})
}
