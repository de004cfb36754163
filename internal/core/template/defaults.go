package template

// Template ids used by the notification flows.
const (
	OrderConfirmation = "order-confirmation"
	OrderShipped      = "order-shipped"
	OrderDelivered    = "order-delivered"
	Welcome           = "welcome"
)

var defaultDefinitions = map[string]Definition{
	OrderConfirmation: {
		Subject: "Order Confirmed - {{orderNumber}}",
		HTML: `<div style="font-family:Arial,sans-serif;max-width:600px;margin:0 auto">
<h2>Thank you for your order, {{customerName}}!</h2>
<p>Your order <strong>{{orderNumber}}</strong> was placed on {{orderDate}}.</p>
<p>Order status: {{orderStatus}} &middot; Payment: {{paymentStatus}}</p>
<table width="100%" cellpadding="6">
{{#each items}}<tr><td><img src="{{image}}" width="48" alt=""></td><td>{{name}}</td><td>x{{quantity}}</td><td>&#8377;{{price}}</td></tr>
{{/each}}</table>
<p><strong>Total: &#8377;{{totalAmount}}</strong></p>
<p>Shipping to: {{address}}</p>
<p><a href="{{trackingUrl}}">Track your order</a></p>
</div>`,
		Text: `Thank you for your order, {{customerName}}!

Order {{orderNumber}} placed on {{orderDate}}.
Status: {{orderStatus}} / Payment: {{paymentStatus}}

Items:
{{#each items}}- {{name}} x{{quantity}} @ {{price}}
{{/each}}
Total: {{totalAmount}}
Shipping to: {{address}}
Track your order: {{trackingUrl}}
`,
	},
	OrderShipped: {
		Subject: "Your order {{orderNumber}} has shipped!",
		HTML: `<div style="font-family:Arial,sans-serif;max-width:600px;margin:0 auto">
<h2>Good news, {{customerName}}!</h2>
<p>Your order <strong>{{orderNumber}}</strong> is on its way.</p>
<p>Carrier: {{carrier}}<br>Tracking number: {{trackingNumber}}<br>Estimated delivery: {{estimatedDelivery}}</p>
<p><a href="{{trackingUrl}}">Track your package</a></p>
</div>`,
		Text: `Good news, {{customerName}}!

Your order {{orderNumber}} has shipped.
Carrier: {{carrier}}
Tracking number: {{trackingNumber}}
Estimated delivery: {{estimatedDelivery}}
Track your package: {{trackingUrl}}
`,
	},
	OrderDelivered: {
		Subject: "Your order {{orderNumber}} was delivered",
		HTML: `<div style="font-family:Arial,sans-serif;max-width:600px;margin:0 auto">
<h2>Your order has arrived, {{customerName}}!</h2>
<p>Order <strong>{{orderNumber}}</strong> was delivered on {{deliveryDate}} to {{deliveryAddress}}.</p>
<p>We would love to hear what you think: <a href="{{reviewUrl}}">leave a review</a>.</p>
<p><a href="{{shopUrl}}">Shop again</a></p>
</div>`,
		Text: `Your order has arrived, {{customerName}}!

Order {{orderNumber}} was delivered on {{deliveryDate}} to {{deliveryAddress}}.
Leave a review: {{reviewUrl}}
Shop again: {{shopUrl}}
`,
	},
	Welcome: {
		Subject: "Welcome to ShopMart, {{customerName}}!",
		HTML: `<div style="font-family:Arial,sans-serif;max-width:600px;margin:0 auto">
<h2>Welcome, {{customerName}}!</h2>
<p>Your account is ready. Happy shopping!</p>
<p><a href="{{shopUrl}}">Start shopping</a></p>
</div>`,
		Text: `Welcome, {{customerName}}!

Your account is ready. Happy shopping!
Start shopping: {{shopUrl}}
`,
	},
}

// DefaultRegistry builds the registry of the stock storefront templates.
func DefaultRegistry() *Registry {
	r, err := NewRegistry(defaultDefinitions)
	if err != nil {
		panic(err)
	}
	return r
}
