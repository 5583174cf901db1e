package billing

// FallbackOffering is the static plan table shown when the live offerings
// fetch explicitly fails. It is never preferred over live data.
func FallbackOffering() *Offering {
	return &Offering{
		Identifier:  "default",
		Description: "CulinaMind Pro",
		Fallback:    true,
		Packages: []Package{
			{Identifier: "monthly", ProductIdentifier: "culinamind_pro_monthly", PriceString: "$4.99/mo"},
			{Identifier: "yearly", ProductIdentifier: "culinamind_pro_yearly", PriceString: "$39.99/yr"},
			{Identifier: "lifetime", ProductIdentifier: "culinamind_pro_lifetime", PriceString: "$99.99"},
		},
	}
}
