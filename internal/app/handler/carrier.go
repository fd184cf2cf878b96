package handler

import (
	"fmt"
	"strings"

	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"

	"github.com/damonto/cellinfo/internal/pkg/carrier"
	"github.com/damonto/cellinfo/internal/pkg/device"
	"github.com/damonto/cellinfo/internal/pkg/modem"
	"github.com/damonto/cellinfo/internal/pkg/util"
)

func Carriers(resolver *carrier.Resolver, source device.Source) th.Handler {
	return func(ctx *th.Context, update telego.Update) error {
		if update.Message == nil {
			return nil
		}
		reports, err := device.Collect(resolver, source)
		if err != nil {
			return err
		}
		return Reply(ctx, update.Message, renderReports(reports))
	}
}

func renderReports(reports []device.Report) string {
	var b strings.Builder
	for i, report := range reports {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "*%s*\n", util.EscapeText(report.Device))
		if report.Status != nil {
			b.WriteString(renderStatus(report.Status))
		}
		if len(report.Carriers) == 0 {
			b.WriteString("No carriers found\n")
		}
		for _, c := range report.Carriers {
			b.WriteString(renderCarrier(c))
		}
	}
	return b.String()
}

func renderStatus(s *modem.Status) string {
	var text string
	if hardware := strings.TrimSpace(s.Manufacturer + " " + s.Revision); hardware != "" {
		text += fmt.Sprintf("Modem: %s\n", util.EscapeText(hardware))
	}
	if s.IMEI != "" {
		text += fmt.Sprintf("IMEI: `%s`\n", s.IMEI)
	}
	state := s.State
	if s.Registration != "" {
		state += ", " + s.Registration
	}
	text += fmt.Sprintf("State: %s\n", util.EscapeText(state))
	text += fmt.Sprintf("Signal: %d%%\n", s.SignalQuality)
	if len(s.OwnNumbers) > 0 {
		text += fmt.Sprintf("Number: %s\n", util.EscapeText(strings.Join(s.OwnNumbers, ", ")))
	}
	return text
}

func renderCarrier(c carrier.Carrier) string {
	name := util.If(c.CarrierName != "", c.CarrierName, "Unknown")
	network := c.NetworkType.String()
	if c.Generation != "" {
		network = fmt.Sprintf("%s (%s)", network, c.Generation)
	}
	text := fmt.Sprintf("`%s` %s\n", util.EscapeText(util.If(c.DisplayName != "", c.DisplayName, "SIM")), util.EscapeText(name))
	text += fmt.Sprintf("Operator: %s\n", util.EscapeText(strings.Trim(c.MobileCountryCode+"/"+c.MobileNetworkCode, "/")))
	if c.Country != "" {
		text += fmt.Sprintf("Country: %s %s\n", util.EscapeText(c.Country), util.EscapeText(strings.ToUpper(c.ISOCountryCode)))
	}
	if c.CountryCode != "" {
		text += fmt.Sprintf("Calling code: \\+%s\n", util.EscapeText(c.CountryCode))
	}
	return text + fmt.Sprintf("Network: %s\n", util.EscapeText(network))
}
