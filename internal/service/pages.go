package service

import (
	"sync"

	"github.com/VladPetriv/currency_exchange/internal/model"
)

// pages keeps the page of every chat with a flow in progress or an open edit modal.
type pages struct {
	mu    sync.Mutex
	items map[int]*model.Page
}

func newPages() *pages {
	return &pages{
		items: make(map[int]*model.Page),
	}
}

func (p *pages) get(chatID int) *model.Page {
	p.mu.Lock()
	defer p.mu.Unlock()

	page, ok := p.items[chatID]
	if !ok {
		page = model.NewPage()
		p.items[chatID] = page
	}

	return page
}

// forget drops the page of the chat, the next get starts with an empty one.
func (p *pages) forget(chatID int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	delete(p.items, chatID)
}
