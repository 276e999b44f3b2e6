package service

import (
	"context"
	"fmt"

	"demoapps/internal/model"
)

// PageContent is the static copy shown on the form page.
type PageContent struct {
	Title string
	Text  string
	Label string
	// GreetingFormat must contain exactly one %s for the entered name.
	GreetingFormat string
}

// DefaultPageContent is the copy the form program ships with.
var DefaultPageContent = PageContent{
	Title:          "🌟 Streamlit + OAuth2 Proxy サンプル",
	Text:           "ログインに成功しました！",
	Label:          "あなたの名前は？",
	GreetingFormat: "こんにちは、%sさん！",
}

// FormService builds the view model for one render of the form page.
type FormService interface {
	// Page returns the page for the given input. The name is used verbatim.
	Page(ctx context.Context, name string) model.FormPage
}

type formService struct {
	content PageContent
}

// NewFormService constructs a FormService rendering the given copy.
func NewFormService(content PageContent) FormService {
	return &formService{content: content}
}

func (s *formService) Page(_ context.Context, name string) model.FormPage {
	page := model.FormPage{
		Title: s.content.Title,
		Text:  s.content.Text,
		Label: s.content.Label,
		Name:  name,
	}
	if name != "" {
		page.Greeting = fmt.Sprintf(s.content.GreetingFormat, name)
	}
	return page
}
