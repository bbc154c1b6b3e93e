package domain

import (
	"testing"
	"time"
)

func activeCampaign(now time.Time) Campaign {
	return Campaign{
		Status:        CampaignActive,
		PaymentStatus: PaymentPaid,
		StartDate:     now.Add(-24 * time.Hour),
		EndDate:       now.Add(24 * time.Hour),
	}
}

func TestCampaignEligible(t *testing.T) {
	now := time.Now()

	c := activeCampaign(now)
	if !c.Eligible(now) {
		t.Fatal("expected active paid in-window campaign to be eligible")
	}

	c = activeCampaign(now)
	c.Status = CampaignPaused
	if c.Eligible(now) {
		t.Error("paused campaign must not be eligible")
	}

	c = activeCampaign(now)
	c.PaymentStatus = PaymentPending
	if c.Eligible(now) {
		t.Error("unpaid campaign must not be eligible")
	}

	c = activeCampaign(now)
	c.StartDate = now.Add(time.Hour)
	c.EndDate = now.Add(48 * time.Hour)
	if c.Eligible(now) {
		t.Error("campaign before its window must not be eligible")
	}

	c = activeCampaign(now)
	c.EndDate = now.Add(-time.Hour)
	c.StartDate = now.Add(-48 * time.Hour)
	if c.Eligible(now) {
		t.Error("expired campaign must not be eligible")
	}

	cap := int64(100)
	c = activeCampaign(now)
	c.MaxImpressions = &cap
	c.CurrentImpressions = 100
	if c.Eligible(now) {
		t.Error("capped campaign must not be eligible")
	}
	c.CurrentImpressions = 99
	if !c.Eligible(now) {
		t.Error("campaign under its cap must be eligible")
	}
}

func TestCampaignTargetsDevice(t *testing.T) {
	c := Campaign{}
	if !c.TargetsDevice(DeviceMobile) {
		t.Error("empty device list should target every device")
	}

	c.Devices = []DeviceClass{DeviceDesktop, DeviceTablet}
	if c.TargetsDevice(DeviceMobile) {
		t.Error("mobile should be filtered out")
	}
	if !c.TargetsDevice(DeviceTablet) {
		t.Error("tablet should be targeted")
	}
}

func TestInferDevice(t *testing.T) {
	cases := []struct {
		ua   string
		want DeviceClass
	}{
		{"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36", DeviceDesktop},
		{"Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) Mobile/15E148", DeviceMobile},
		{"Mozilla/5.0 (Linux; Android 14; Pixel 8) Mobile Safari/537.36", DeviceMobile},
		{"Mozilla/5.0 (iPad; CPU OS 17_0 like Mac OS X) Mobile/15E148", DeviceTablet},
		{"Mozilla/5.0 (Linux; Android 13; SM-X710) Tablet Safari", DeviceTablet},
		{"", DeviceDesktop},
	}
	for _, c := range cases {
		if got := InferDevice(c.ua); got != c.want {
			t.Errorf("InferDevice(%q) = %s, want %s", c.ua, got, c.want)
		}
	}
}
