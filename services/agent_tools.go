package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"innpilot/constants"
	"innpilot/dto"
	"innpilot/errors"
	"innpilot/models"
)

// mutatingTools require manager privileges; read-only tools are open to any
// authenticated staff member.
var mutatingTools = map[string]bool{
	"cancel_booking":    true,
	"update_room_price": true,
	"block_dates":       true,
	"create_promo":      true,
}

func parseToolDate(value string, fallback time.Time) (time.Time, error) {
	if value == "" {
		return DateOnly(fallback), nil
	}
	day, err := time.Parse(constants.DateLayout, value)
	if err != nil {
		return time.Time{}, errors.NewAppError(errors.ErrCodeInvalidDate, "invalid date: "+value, err)
	}
	return DateOnly(day), nil
}

// resolveRoomType maps a free-text room name onto one of the hotel's room
// types via the fuzzy matcher.
func (s *AgentService) resolveRoomType(ctx context.Context, hotelID uint, name string) (models.RoomType, error) {
	var roomTypes []models.RoomType
	if err := s.Rates.DB.WithContext(ctx).Where("hotel_id = ?", hotelID).Find(&roomTypes).Error; err != nil {
		return models.RoomType{}, errors.NewAppError(errors.ErrCodeDBError, "failed to load room types", err)
	}
	names := make([]string, len(roomTypes))
	for i, rt := range roomTypes {
		names[i] = rt.Name
	}
	matched, ok := NewNameMatcher(names).Match(name)
	if !ok {
		return models.RoomType{}, errors.NewAppError(errors.ErrCodeDBNotFound,
			"no room type matches \""+name+"\"", errors.ErrRoomTypeNotFound)
	}
	for _, rt := range roomTypes {
		if rt.Name == matched {
			return rt, nil
		}
	}
	return models.RoomType{}, errors.NewAppError(errors.ErrCodeDBNotFound, "room type not found", errors.ErrRoomTypeNotFound)
}

// dispatch executes one tool call on behalf of the user.
func (s *AgentService) dispatch(ctx context.Context, hotelID uint, role int, call toolCall) (dto.AgentReply, error) {
	reply := dto.AgentReply{Tool: call.Tool}

	if mutatingTools[call.Tool] && role > constants.RoleManager {
		return reply, errors.NewAppError(errors.ErrCodeUnauthorized,
			"your role is not allowed to perform this action", errors.ErrUnauthorized)
	}

	switch call.Tool {
	case "dashboard_stats":
		stats, err := s.Reports.DashboardStats(ctx, hotelID, time.Now())
		if err != nil {
			return reply, err
		}
		reply.Data = stats
		reply.Reply = fmt.Sprintf("Today: %d arrival(s), %d departure(s), %d in-house, %.0f%% occupancy, %.2f revenue this month.",
			stats.ArrivalsToday, stats.DeparturesToday, stats.InHouse, stats.OccupancyPercent, stats.RevenueThisMonth)

	case "search_bookings":
		var args struct {
			Status   string `json:"status"`
			Search   string `json:"search"`
			DateFrom string `json:"date_from"`
			DateTo   string `json:"date_to"`
		}
		if err := json.Unmarshal(call.Args, &args); err != nil {
			return reply, errors.NewAppError(errors.ErrCodeValidation, "invalid tool arguments", err)
		}
		bookings, total, err := s.Bookings.List(ctx, hotelID, dto.BookingFilters{
			Status:   args.Status,
			Search:   args.Search,
			DateFrom: args.DateFrom,
			DateTo:   args.DateTo,
			Limit:    20,
		})
		if err != nil {
			return reply, err
		}
		reply.Data = bookings
		reply.Reply = fmt.Sprintf("Found %d booking(s).", total)

	case "booking_details":
		booking, err := s.bookingByReferenceArg(ctx, hotelID, call.Args)
		if err != nil {
			return reply, err
		}
		reply.Data = booking
		reply.Reply = fmt.Sprintf("Booking %s: %s, %s to %s, %d room(s), total %.2f.",
			booking.ReferenceCode, booking.Status,
			booking.CheckIn.Format(constants.DateLayout), booking.CheckOut.Format(constants.DateLayout),
			len(booking.Rooms), booking.TotalPrice)

	case "cancel_booking":
		booking, err := s.bookingByReferenceArg(ctx, hotelID, call.Args)
		if err != nil {
			return reply, err
		}
		cancelled, err := s.Bookings.Cancel(ctx, hotelID, booking.ID)
		if err != nil {
			return reply, err
		}
		reply.Data = cancelled
		reply.Reply = fmt.Sprintf("Booking %s has been cancelled.", cancelled.ReferenceCode)

	case "arrivals", "departures":
		var args struct {
			Date string `json:"date"`
		}
		if err := json.Unmarshal(call.Args, &args); err != nil {
			return reply, errors.NewAppError(errors.ErrCodeValidation, "invalid tool arguments", err)
		}
		day, err := parseToolDate(args.Date, time.Now())
		if err != nil {
			return reply, err
		}
		var bookings []models.Booking
		if call.Tool == "arrivals" {
			bookings, err = s.Bookings.ArrivalsOn(ctx, hotelID, day)
		} else {
			bookings, err = s.Bookings.DeparturesOn(ctx, hotelID, day)
		}
		if err != nil {
			return reply, err
		}
		reply.Data = bookings
		reply.Reply = fmt.Sprintf("%d %s on %s.", len(bookings), call.Tool, day.Format(constants.DateLayout))

	case "room_inventory":
		var args struct {
			DateFrom string `json:"date_from"`
			DateTo   string `json:"date_to"`
		}
		if err := json.Unmarshal(call.Args, &args); err != nil {
			return reply, errors.NewAppError(errors.ErrCodeValidation, "invalid tool arguments", err)
		}
		from, err := parseToolDate(args.DateFrom, time.Now())
		if err != nil {
			return reply, err
		}
		to, err := parseToolDate(args.DateTo, from.AddDate(0, 0, 6))
		if err != nil {
			return reply, err
		}
		grid, err := s.Availability.ComputeAvailability(ctx, hotelID, from, to)
		if err != nil {
			return reply, err
		}
		reply.Data = grid
		reply.Reply = fmt.Sprintf("Availability for %d room type(s), %s to %s.",
			len(grid), from.Format(constants.DateLayout), to.Format(constants.DateLayout))

	case "update_room_price":
		var args struct {
			RoomType string  `json:"room_type"`
			DateFrom string  `json:"date_from"`
			DateTo   string  `json:"date_to"`
			Price    float64 `json:"price"`
		}
		if err := json.Unmarshal(call.Args, &args); err != nil {
			return reply, errors.NewAppError(errors.ErrCodeValidation, "invalid tool arguments", err)
		}
		rt, err := s.resolveRoomType(ctx, hotelID, args.RoomType)
		if err != nil {
			return reply, err
		}
		from, err := parseToolDate(args.DateFrom, time.Now())
		if err != nil {
			return reply, err
		}
		to, err := parseToolDate(args.DateTo, from)
		if err != nil {
			return reply, err
		}
		if err := s.Rates.SetRangePrice(ctx, models.BaseRateKey(rt.ID), from, to, args.Price); err != nil {
			return reply, err
		}
		reply.Reply = fmt.Sprintf("Set %s to %.2f per night from %s through %s.",
			rt.Name, args.Price, from.Format(constants.DateLayout), to.Format(constants.DateLayout))

	case "block_dates":
		var args struct {
			RoomType  string `json:"room_type"`
			StartDate string `json:"start_date"`
			EndDate   string `json:"end_date"`
			Count     int    `json:"count"`
			Reason    string `json:"reason"`
		}
		if err := json.Unmarshal(call.Args, &args); err != nil {
			return reply, errors.NewAppError(errors.ErrCodeValidation, "invalid tool arguments", err)
		}
		rt, err := s.resolveRoomType(ctx, hotelID, args.RoomType)
		if err != nil {
			return reply, err
		}
		start, err := parseToolDate(args.StartDate, time.Now())
		if err != nil {
			return reply, err
		}
		end, err := parseToolDate(args.EndDate, start)
		if err != nil {
			return reply, err
		}
		block := models.RoomBlock{
			HotelID:      hotelID,
			RoomTypeID:   rt.ID,
			StartDate:    start,
			EndDate:      end,
			BlockedCount: args.Count,
			Reason:       args.Reason,
		}
		if err := s.Availability.CreateBlock(ctx, &block); err != nil {
			return reply, err
		}
		reply.Data = block
		reply.Reply = fmt.Sprintf("Blocked %d unit(s) of %s from %s through %s.",
			block.BlockedCount, rt.Name, start.Format(constants.DateLayout), end.Format(constants.DateLayout))

	case "create_promo":
		var args struct {
			Code          string  `json:"code"`
			DiscountType  string  `json:"discount_type"`
			DiscountValue float64 `json:"discount_value"`
			StartDate     string  `json:"start_date"`
			EndDate       string  `json:"end_date"`
			MaxUsage      int     `json:"max_usage"`
		}
		if err := json.Unmarshal(call.Args, &args); err != nil {
			return reply, errors.NewAppError(errors.ErrCodeValidation, "invalid tool arguments", err)
		}
		promo := models.PromoCode{
			HotelID:       hotelID,
			Code:          strings.ToUpper(strings.TrimSpace(args.Code)),
			DiscountType:  args.DiscountType,
			DiscountValue: args.DiscountValue,
		}
		if promo.DiscountType == "" {
			promo.DiscountType = constants.DiscountTypePercentage
		}
		if args.StartDate != "" {
			start, err := parseToolDate(args.StartDate, time.Time{})
			if err != nil {
				return reply, err
			}
			promo.StartDate = &start
		}
		if args.EndDate != "" {
			end, err := parseToolDate(args.EndDate, time.Time{})
			if err != nil {
				return reply, err
			}
			promo.EndDate = &end
		}
		if args.MaxUsage > 0 {
			promo.MaxUsage = &args.MaxUsage
		}
		if err := s.Promos.Create(ctx, &promo); err != nil {
			return reply, err
		}
		reply.Data = promo
		reply.Reply = fmt.Sprintf("Promo code %s created.", promo.Code)

	default:
		return reply, errors.NewAppError(errors.ErrCodeInvalidOperation, "unknown tool: "+call.Tool, nil)
	}

	return reply, nil
}

func (s *AgentService) bookingByReferenceArg(ctx context.Context, hotelID uint, raw json.RawMessage) (models.Booking, error) {
	var args struct {
		Reference string `json:"reference"`
	}
	if err := json.Unmarshal(raw, &args); err != nil {
		return models.Booking{}, errors.NewAppError(errors.ErrCodeValidation, "invalid tool arguments", err)
	}
	if args.Reference == "" {
		return models.Booking{}, errors.NewAppError(errors.ErrCodeRequiredField, "booking reference is required", nil)
	}
	return s.Bookings.GetByReference(ctx, hotelID, args.Reference)
}
