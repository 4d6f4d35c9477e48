package phonehub

import (
	"context"

	"github.com/ourstudio-se/phonehub/support"
	"github.com/ourstudio-se/phonehub/tools"
)

// TextResult is the result of tools that answer with a message.
type TextResult struct {
	Message string `json:"message"`
}

// RepairResult is the result of the get_repair_info tool.
type RepairResult struct {
	Message string         `json:"message"`
	Quote   *support.Quote `json:"quote,omitempty"`
}

func text(s string) (any, error) {
	return TextResult{Message: s}, nil
}

// registerTools exposes every support handler by name.
func registerTools(r *tools.Registry, desk *support.Desk) {
	r.Register(tools.NewTool("get_phone_info").
		Description("Get information about phone models by brand or exact model name").
		StringParam("brand", "Phone brand, e.g. Samsung", false).
		StringParam("model", "Exact model name, e.g. iPhone 15", false).
		Handler(func(ctx context.Context, in tools.Input) (any, error) {
			return text(desk.ProductInfo(support.ProductQuery{
				Brand: in.String("brand"),
				Model: in.String("model"),
			}))
		}).
		Build())

	r.Register(tools.NewTool("check_availability").
		Description("Check whether a phone model is in stock, optionally in a color").
		StringParam("model", "Exact model name", true).
		StringParam("color", "Color name", false).
		Handler(func(ctx context.Context, in tools.Input) (any, error) {
			return text(desk.CheckAvailability(in.String("model"), in.String("color")))
		}).
		Build())

	r.Register(tools.NewTool("compare_models").
		Description("Compare two phone models side by side").
		StringParam("first", "First model name", true).
		StringParam("second", "Second model name", true).
		Handler(func(ctx context.Context, in tools.Input) (any, error) {
			return text(desk.CompareModels(in.String("first"), in.String("second")))
		}).
		Build())

	r.Register(tools.NewTool("get_repair_info").
		Description("Estimate repair cost and turnaround").
		StringParam("phoneType", "Type of phone needing repair", true).
		StringParam("issue", "Description of the problem", true).
		EnumParam("urgency", "Repair urgency", []string{string(support.UrgencyStandard), string(support.UrgencyUrgent)}, false).
		Handler(func(ctx context.Context, in tools.Input) (any, error) {
			q := support.RepairQuery{
				PhoneType: in.String("phoneType"),
				Issue:     in.String("issue"),
				Urgency:   support.Urgency(in.String("urgency")),
			}
			res := RepairResult{Message: desk.RepairInfo(q)}
			if quote, ok := desk.RepairQuote(q); ok {
				res.Quote = &quote
			}
			return res, nil
		}).
		Build())

	r.Register(tools.NewTool("check_repair_status").
		Description("Check the status of a repair ticket").
		StringParam("ticketId", "Repair ticket number, e.g. TICKET-001", true).
		Handler(func(ctx context.Context, in tools.Input) (any, error) {
			return text(desk.CheckStatus(in.String("ticketId")))
		}).
		Build())

	r.Register(tools.NewTool("track_order").
		Description("Track a sales or repair order").
		StringParam("orderId", "Order number, e.g. ORD001", true).
		Handler(func(ctx context.Context, in tools.Input) (any, error) {
			return text(desk.TrackOrder(in.String("orderId")))
		}).
		Build())

	r.Register(tools.NewTool("book_appointment").
		Description("Book a repair appointment").
		StringParam("customerName", "Customer's name", true).
		StringParam("phoneType", "Type of phone to repair", true).
		StringParam("issue", "Description of issue", true).
		StringParam("date", "Preferred appointment date (YYYY-MM-DD)", true).
		StringParam("time", "Preferred time slot", true).
		StringParam("contact", "Contact phone or email", true).
		Handler(func(ctx context.Context, in tools.Input) (any, error) {
			return desk.Book(support.BookingRequest{
				CustomerName: in.String("customerName"),
				PhoneType:    in.String("phoneType"),
				Issue:        in.String("issue"),
				Date:         in.String("date"),
				Time:         in.String("time"),
				Contact:      in.String("contact"),
			}), nil
		}).
		Build())

	r.Register(tools.NewTool("check_appointment").
		Description("Look up a booked appointment").
		IntParam("appointmentId", "Numeric appointment id", true).
		Handler(func(ctx context.Context, in tools.Input) (any, error) {
			return text(desk.CheckAppointment(in.Int("appointmentId")))
		}).
		Build())

	r.Register(tools.NewTool("troubleshoot").
		Description("Basic troubleshooting steps for a phone problem").
		StringParam("issue", "Description of the problem", true).
		Handler(func(ctx context.Context, in tools.Input) (any, error) {
			return text(desk.Troubleshoot(in.String("issue")))
		}).
		Build())

	r.Register(tools.NewTool("warranty_info").
		Description("Warranty policy for a product type, or all policies").
		EnumParam("productType", "Product type", []string{"new_phone", "refurbished", "repair"}, false).
		Handler(func(ctx context.Context, in tools.Input) (any, error) {
			if p := in.String("productType"); p != "" {
				return text(desk.Warranty(p))
			}
			return text(desk.WarrantyOverview())
		}).
		Build())

	r.Register(tools.NewTool("contact_info").
		Description("Store contact details and opening hours").
		Handler(func(ctx context.Context, in tools.Input) (any, error) {
			return text(desk.ContactInfo())
		}).
		Build())

	r.Register(tools.NewTool("faq").
		Description("Answer a policy question by topic, or list the topics").
		StringParam("topic", "FAQ topic key, e.g. return_policy", false).
		Handler(func(ctx context.Context, in tools.Input) (any, error) {
			if t := in.String("topic"); t != "" {
				return text(desk.FAQ(t))
			}
			return map[string][]string{"topics": desk.FAQTopics()}, nil
		}).
		Build())
}
