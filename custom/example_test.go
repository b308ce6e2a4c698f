package custom

import (
	"testing"

	"cptui.GO/hooks"
	"cptui.GO/settings"
)

func TestSubscriberCounts(t *testing.T) {
	reg := hooks.NewRegistry()
	settings.New().Init(reg)

	counts := subscriberCounts(reg)
	for _, kind := range []string{"post_type", "taxonomy"} {
		for _, p := range points {
			if n := counts[kind][string(p)]; n != 1 {
				t.Errorf("%s %s = %d, want 1", kind, p, n)
			}
		}
	}
}

func TestInit_WiresDefaultRegistry(t *testing.T) {
	if n := hooks.Default().Count(hooks.PointPreRegister, hooks.KindTaxonomy); n != 1 {
		t.Errorf("default pre_register subscribers = %d, want 1", n)
	}
}
