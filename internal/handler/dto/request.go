package dto

type DateTimeRequest struct {
	Date string `json:"date"`
	Time string `json:"time"`
}

type AddonsRequest struct {
	Driver    bool `json:"driver"`
	GPS       bool `json:"gps"`
	ChildSeat bool `json:"child_seat"`
	Insurance bool `json:"insurance"`
}

type TotalsRequest struct {
	Days          int   `json:"days"`
	Base          int64 `json:"base"`
	Addons        int64 `json:"addons"`
	Subtotal      int64 `json:"subtotal"`
	ServiceCharge int64 `json:"service_charge"`
	Total         int64 `json:"total"`
}

type BookRequest struct {
	CarID       string          `json:"car_id"       binding:"required,uuid"`
	UserID      string          `json:"user_id"      binding:"omitempty,uuid"`
	Pickup      DateTimeRequest `json:"pickup"       binding:"required"`
	Return      DateTimeRequest `json:"return"       binding:"required"`
	Addons      AddonsRequest   `json:"addons"`
	Totals      TotalsRequest   `json:"totals"       binding:"required"`
	PayMode     string          `json:"pay_mode"     binding:"required,oneof=hold full"`
	LicensePath string          `json:"license_path"`
}

type CancelRequest struct {
	UserID string `json:"user_id" binding:"required,uuid"`
}

type PaymentWebhookRequest struct {
	ProviderTransactionID string `json:"provider_transaction_id" binding:"required"`
	EventType             string `json:"event_type"              binding:"required,oneof=payment.completed payment.failed"`
}

type SaveDraftRequest struct {
	CarID             string          `json:"car_id"              binding:"required,uuid"`
	Pickup            DateTimeRequest `json:"pickup"`
	Return            DateTimeRequest `json:"return"`
	Addons            AddonsRequest   `json:"addons"`
	Totals            TotalsRequest   `json:"totals"`
	PayMode           string          `json:"pay_mode"            binding:"omitempty,oneof=hold full"`
	RedirectToProfile bool            `json:"redirect_to_profile"`
	ReturnTo          string          `json:"return_to"`
}

type ResumeDraftRequest struct {
	UserID string `json:"user_id" binding:"omitempty,uuid"`
}

type QuoteRequest struct {
	CarID  string          `json:"car_id" binding:"required,uuid"`
	Pickup DateTimeRequest `json:"pickup" binding:"required"`
	Return DateTimeRequest `json:"return" binding:"required"`
	Addons AddonsRequest   `json:"addons"`
}

type CreateCarRequest struct {
	Name              string `json:"name"                 binding:"required"`
	Make              string `json:"make"`
	Model             string `json:"model"`
	Seats             int    `json:"seats"                binding:"omitempty,gt=0"`
	PricePerDayPaise  int64  `json:"price_per_day_paise"  binding:"required,gt=0"`
	PricePerHourPaise int64  `json:"price_per_hour_paise" binding:"omitempty,gte=0"`
	Currency          string `json:"currency"             binding:"omitempty,len=3"`
}

type CreateUserRequest struct {
	Username       string  `json:"username" binding:"required"`
	Phone          *string `json:"phone"`
	TelegramChatID *int64  `json:"telegram_chat_id"`
}

type UpdatePhoneRequest struct {
	Phone string `json:"phone" binding:"required"`
}
