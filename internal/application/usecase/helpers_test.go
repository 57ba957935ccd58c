package usecase_test

import (
	"context"

	"github.com/hH-13/tilde/internal/domain/entity"
	"github.com/hH-13/tilde/internal/logging"
)

func testContext() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

func testCommands() []entity.Command {
	return []entity.Command{
		{Key: "*", URL: "https://www.google.com", Search: "/search?q={}"},
		{Key: "bin", URL: "https://www.bing.com", Search: "/search?q={}"},
		{Key: "ddg", URL: "https://duckduckgo.com", Search: "/?q={}"},
		{Key: "m", Name: "GMail", URL: "https://mail.google.com/mail/u/0/", Search: "/mail/u/0/?q={}#search/{}", Color: "#d93025"},
		{Key: "g", Name: "GitHub", URL: "https://github.com/", Color: "#24292e"},
		{Key: "r", Name: "Reddit", URL: "https://www.reddit.com", Search: "/search?q={}", Color: "#ff4500"},
		{Key: "q", Name: "Quora", URL: "https://www.quora.com"},
	}
}

func testScripts() []entity.Script {
	return []entity.Script{
		{Key: "q", CommandKeys: []string{"bin", "ddg", "*"}},
		{Key: "all", CommandKeys: []string{"q", "r"}},
	}
}
