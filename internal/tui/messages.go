package tui

import (
	"github.com/yushkumar524/BiasLabPrototype/internal/models"
)

type articlesLoadedMsg struct {
	articles []models.Article
}

type browseErrMsg struct {
	err error
}
