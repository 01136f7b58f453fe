package httpkit

// Protected groups routes behind bearer auth, handlers inside read the owner with User
func Protected(r Router, p *Port, fn func(Router)) {
	r.Group(func(gr Router) {
		if p != nil {
			gr.Use(Auth(p))
		}
		fn(gr)
	})
}
