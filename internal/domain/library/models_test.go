package library

import (
	"reflect"
	"testing"
)

func TestOwnedGameJSONTags(t *testing.T) {
	type fieldCheck struct {
		name string
		tag  string
	}
	gameType := reflect.TypeOf(OwnedGame{})
	fields := []fieldCheck{
		{"AppID", "appid"},
		{"Name", "name"},
		{"PlaytimeForever", "playtime_forever"},
		{"ImgIconURL", "img_icon_url,omitempty"},
	}
	for _, fc := range fields {
		f, ok := gameType.FieldByName(fc.name)
		if !ok {
			t.Fatalf("missing field %s", fc.name)
		}
		if tag := f.Tag.Get("json"); tag != fc.tag {
			t.Fatalf("field %s expected tag %s, got %s", fc.name, fc.tag, tag)
		}
	}
}

func TestOwnedGameIconURL(t *testing.T) {
	g := OwnedGame{AppID: 220, ImgIconURL: "abc"}
	want := IconBaseURL + "/220/abc.jpg"
	if got := g.IconURL(); got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}
	if (OwnedGame{AppID: 1}).IconURL() != "" {
		t.Fatal("expected empty icon url without hash")
	}
}

func TestPlayerAchievementUnlocked(t *testing.T) {
	if !(PlayerAchievement{Achieved: 1}).Unlocked() {
		t.Fatal("expected achieved=1 to be unlocked")
	}
	if (PlayerAchievement{Achieved: 0}).Unlocked() {
		t.Fatal("expected achieved=0 to be locked")
	}
}
