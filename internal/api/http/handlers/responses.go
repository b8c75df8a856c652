package handlers

import (
	"github.com/ibrahimhozhun/food-ordering-app/internal/api/dto"
	"github.com/ibrahimhozhun/food-ordering-app/internal/domain"
	"github.com/ibrahimhozhun/food-ordering-app/internal/service"
)

// Mapping helpers from domain/service views to response payloads. Slices
// are always materialized so empty collections render as [] rather than
// null.

func foodResponse(food *domain.Food) dto.FoodResponse {
	return dto.FoodResponse{
		ID:    food.ID,
		Title: food.Title,
		Price: food.Price,
		Image: food.Image,
	}
}

func orderResponse(order *domain.Order) dto.OrderResponse {
	resp := dto.OrderResponse{
		ID:           order.ID,
		CustomerID:   order.CustomerID,
		RestaurantID: order.RestaurantID,
		FoodID:       order.FoodID,
		Status:       string(order.Status),
		CreatedAt:    order.CreatedAt,
	}
	if order.Food != nil {
		resp.Food = foodResponse(order.Food)
	}
	return resp
}

func orderResponses(orders []domain.Order) []dto.OrderResponse {
	items := make([]dto.OrderResponse, 0, len(orders))
	for i := range orders {
		items = append(items, orderResponse(&orders[i]))
	}
	return items
}

func restaurantPublicResponse(view *service.RestaurantView) dto.RestaurantPublicResponse {
	menu := make([]dto.FoodResponse, 0, len(view.Menu))
	for i := range view.Menu {
		menu = append(menu, foodResponse(&view.Menu[i]))
	}
	return dto.RestaurantPublicResponse{
		ID:             view.Restaurant.ID,
		RestaurantName: view.Restaurant.RestaurantName,
		AvgWaitTime:    view.Restaurant.AvgWaitTime,
		Menu:           menu,
	}
}

func restaurantDetailResponse(detail *service.RestaurantDetail) dto.RestaurantDetailResponse {
	return dto.RestaurantDetailResponse{
		RestaurantPublicResponse: restaurantPublicResponse(&detail.RestaurantView),
		Username:                 detail.Restaurant.Username,
		Email:                    detail.Restaurant.Email,
		Orders:                   orderResponses(detail.Orders),
		CreatedAt:                detail.Restaurant.CreatedAt,
	}
}

func customerResponse(profile *service.CustomerProfile) dto.CustomerResponse {
	liked := make([]dto.RestaurantPublicResponse, 0, len(profile.LikedRestaurants))
	for i := range profile.LikedRestaurants {
		liked = append(liked, restaurantPublicResponse(&profile.LikedRestaurants[i]))
	}
	return dto.CustomerResponse{
		ID:               profile.Customer.ID,
		Username:         profile.Customer.Username,
		Email:            profile.Customer.Email,
		Orders:           orderResponses(profile.Orders),
		LikedRestaurants: liked,
	}
}
