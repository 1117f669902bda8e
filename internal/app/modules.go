package app

import (
	"github.com/vk/contentgrid/components/cardcollection"
	"github.com/vk/contentgrid/components/chrome"
	"github.com/vk/contentgrid/components/ctagroup"
	"github.com/vk/contentgrid/components/herobanner"
	"github.com/vk/contentgrid/components/imagegallery"
	"github.com/vk/contentgrid/components/richtext"
	"github.com/vk/contentgrid/components/teaser"
	"github.com/vk/contentgrid/internal/registry"
)

// coreComponents is the definitive list of all component modules that are
// compiled into the contentgrid binary.
var coreComponents = []registry.Module{
	&chrome.Module{},
	&herobanner.Module{},
	&richtext.Module{},
	&cardcollection.Module{},
	&ctagroup.Module{},
	&imagegallery.Module{},
	&teaser.Module{},
}
