package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplication_AliasSet_BaseOnly(t *testing.T) {
	app := Application{
		Name:     "shop",
		Services: []Service{{Name: "web"}},
	}

	aliases := app.AliasSet("web")

	assert.Equal(t, []string{"web.shop.internal"}, aliases)
}

func TestApplication_AliasSet_WithProxyHostnames(t *testing.T) {
	app := Application{
		Name: "blog",
		Services: []Service{
			{Name: "web", ProxyHostnames: []string{"blog.test", "www.blog.test"}},
			{Name: "db", ProxyHostnames: []string{"db.test"}},
		},
	}

	aliases := app.AliasSet("web")

	assert.Equal(t, []string{"web.blog.internal", "blog.test", "www.blog.test"}, aliases)
}

func TestApplication_AliasSet_DropsEmptyAndDuplicateEntries(t *testing.T) {
	app := Application{
		Name: "blog",
		Services: []Service{
			{Name: "web", ProxyHostnames: []string{"", "blog.test", "  ", "blog.test", "web.blog.internal"}},
		},
	}

	aliases := app.AliasSet("web")

	assert.Equal(t, []string{"web.blog.internal", "blog.test"}, aliases)
}

func TestApplication_AliasSet_UnknownService(t *testing.T) {
	app := Application{
		Name:     "blog",
		Services: []Service{{Name: "web", ProxyHostnames: []string{"blog.test"}}},
	}

	aliases := app.AliasSet("worker")

	assert.Equal(t, []string{"worker.blog.internal"}, aliases)
}

func TestApplication_DefaultNetworkName(t *testing.T) {
	app := Application{Name: "shop"}
	assert.Equal(t, "shop_default", app.DefaultNetworkName())
}

func TestNetwork_InUse(t *testing.T) {
	assert.False(t, (&Network{}).InUse())
	assert.True(t, (&Network{Containers: []string{"abc"}}).InUse())
}
