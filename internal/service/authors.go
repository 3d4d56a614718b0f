package service

import "github.com/scorp5438/articles-app/internal/domain"

// deletedAuthorName is shown for content whose author account was removed;
// the content itself survives with a null author reference.
const deletedAuthorName = "deleted"

// authorNames memoizes author lookups within a single listing so a page of
// articles by the same author costs one query.
type authorNames struct {
	lookup func(domain.UserId) (domain.User, error)
	cache  map[domain.UserId]string
}

func newAuthorNames(lookup func(domain.UserId) (domain.User, error)) *authorNames {
	return &authorNames{lookup: lookup, cache: make(map[domain.UserId]string)}
}

func (n *authorNames) resolve(id *domain.UserId) string {
	if id == nil {
		return deletedAuthorName
	}
	if name, ok := n.cache[*id]; ok {
		return name
	}
	name := deletedAuthorName
	if user, err := n.lookup(*id); err == nil {
		name = user.FullName
	}
	n.cache[*id] = name
	return name
}
