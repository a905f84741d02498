package main

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/muhammadheryan/buyer-leads/constant"
	"github.com/muhammadheryan/buyer-leads/model"
)

var (
	firstNames = []string{"Rajesh", "Priya", "Amit", "Sunita", "Vikram", "Meera", "Rohit", "Kavita", "Deepak", "Anjali"}
	lastNames  = []string{"Kumar", "Sharma", "Patel", "Gupta", "Singh", "Joshi", "Malhotra", "Agarwal", "Verma", "Kapoor"}
	sampleTags = []string{"urgent", "family", "premium", "budget", "first-time", "investment", "metro", "parking"}
)

// budgetRanges holds the [min, max] budget per property type, for buying and renting.
var budgetRanges = map[constant.PropertyType][2][2]int64{
	constant.PropertyApartment: {{3000000, 8000000}, {15000, 40000}},
	constant.PropertyVilla:     {{6000000, 20000000}, {30000, 80000}},
	constant.PropertyPlot:      {{2000000, 10000000}, {10000, 30000}},
	constant.PropertyOffice:    {{5000000, 50000000}, {40000, 200000}},
	constant.PropertyRetail:    {{3000000, 30000000}, {30000, 150000}},
}

func pick(r *rand.Rand, values []string) string {
	return values[r.Intn(len(values))]
}

// sampleBuyer builds a request that passes the buyer rules.
func sampleBuyer(r *rand.Rand) model.BuyerRequest {
	first, last := pick(r, firstNames), pick(r, lastNames)
	propertyType := constant.PropertyType(pick(r, constant.PropertyTypes))
	purpose := constant.Purpose(pick(r, constant.Purposes))

	req := model.BuyerRequest{
		FullName:     first + " " + last,
		Phone:        fmt.Sprintf("9%09d", r.Intn(1000000000)),
		City:         pick(r, constant.Cities),
		PropertyType: string(propertyType),
		Purpose:      string(purpose),
		Timeline:     pick(r, constant.Timelines),
		Source:       pick(r, constant.Sources),
	}
	if r.Intn(5) > 0 {
		email := strings.ToLower(first + "." + last + "@email.com")
		req.Email = &email
	}
	if propertyType.RequiresBHK() {
		bhk := pick(r, constant.BHKs)
		req.BHK = &bhk
	}

	rng := budgetRanges[propertyType][0]
	if purpose == constant.PurposeRent {
		rng = budgetRanges[propertyType][1]
	}
	lo := rng[0] + r.Int63n((rng[1]-rng[0])/2+1)
	hi := lo + r.Int63n(rng[1]-lo+1)
	req.BudgetMin, req.BudgetMax = &lo, &hi

	notes := fmt.Sprintf("Looking for a %s to %s.", strings.ToLower(string(propertyType)), strings.ToLower(string(purpose)))
	req.Notes = &notes

	for i, n := 0, r.Intn(3); i <= n; i++ {
		req.Tags = append(req.Tags, pick(r, sampleTags))
	}

	status := pick(r, constant.BuyerStatuses)
	req.Status = &status
	return req
}
