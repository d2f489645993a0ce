package entity

// Subscription is the normalized shape the bridge exposes to callers,
// rebuilt fresh from the upstream payload on every request. Optional
// fields degrade to null or empty instead of failing normalization.
type Subscription struct {
	ID           int64            `json:"id"`
	Status       string           `json:"status"`
	NextChargeAt *string          `json:"next_charge_at"`
	Items        []Item           `json:"items"`
	Discounts    []map[string]any `json:"discounts"`
}

// Item is one line item on a subscription.
type Item struct {
	Title string `json:"title"`
	Qty   int64  `json:"qty"`
	ID    int64  `json:"id"`
}

// Field names the provider has used for the next charge timestamp,
// in resolution priority order.
var nextChargeFields = []string{"next_billing_date", "next_charge_date", "next_charge_at"}

// SubscriptionsFromEnvelope locates the subscription list inside an
// upstream envelope and normalizes each entry. Probe order: top-level
// "payload" array, top-level "subscriptions" array, nested
// "payload.subscriptions" array; default empty.
func SubscriptionsFromEnvelope(body map[string]any) []Subscription {
	raw, ok := arrayAt(body, "payload")
	if !ok {
		raw, ok = arrayAt(body, "subscriptions")
	}
	if !ok {
		raw, _ = nestedArrayAt(body, "payload", "subscriptions")
	}

	subs := make([]Subscription, 0, len(raw))
	for _, m := range objectsIn(raw) {
		subs = append(subs, subscriptionFromObject(m))
	}
	return subs
}

func subscriptionFromObject(m map[string]any) Subscription {
	sub := Subscription{
		ID:        intField(m, "id"),
		Items:     []Item{},
		Discounts: []map[string]any{},
	}
	sub.Status, _ = stringField(m, "status")

	if next, ok := firstStringField(m, nextChargeFields...); ok {
		sub.NextChargeAt = &next
	}

	if items, ok := arrayAt(m, "items"); ok {
		for _, im := range objectsIn(items) {
			sub.Items = append(sub.Items, itemFromObject(im))
		}
	}

	// Discount codes pass through untouched; their shape is provider-defined.
	if discounts, ok := arrayAt(m, "discount_codes"); ok {
		sub.Discounts = objectsIn(discounts)
	}

	return sub
}

func itemFromObject(m map[string]any) Item {
	item := Item{
		Qty: intField(m, "quantity"),
		ID:  intField(m, "id"),
	}
	item.Title, _ = stringField(m, "title")
	if item.Qty == 0 {
		item.Qty = intField(m, "qty")
	}
	return item
}
