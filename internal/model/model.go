// Package model contains the response and view models of both programs.
// No business logic lives here.
package model

// Message is the body returned by the API root route.
type Message struct {
	Message string `json:"message"`
}

// HealthStatus is the body returned by the API health route.
type HealthStatus struct {
	Status string `json:"status"`
}

// FormPage is everything the form template needs for one render.
// Greeting is empty unless Name is non-empty.
type FormPage struct {
	Title    string
	Text     string
	Label    string
	Name     string
	Greeting string
}

// Greeted reports whether the page shows a greeting.
func (p FormPage) Greeted() bool {
	return p.Greeting != ""
}
