package render

import (
	"errors"
	"time"

	"github.com/playwright-community/playwright-go"
)

const (
	ViewportWidth     = 1280
	ViewportHeight    = 800
	NavigationTimeout = 10 * time.Second
)

// PlaywrightBrowser is a headless Chromium driven through Playwright.
type PlaywrightBrowser struct {
	pwClient *playwright.Playwright // The Playwright client to use
	browser  playwright.Browser     // The Playwright browser to use
}

func LaunchPlaywright() (*PlaywrightBrowser, error) {
	pw, err := playwright.Run(&playwright.RunOptions{
		SkipInstallBrowsers: true,
	})
	if err != nil {
		return nil, err
	}

	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(true),
	})
	if err != nil {
		_ = pw.Stop()
		return nil, err
	}
	return &PlaywrightBrowser{pwClient: pw, browser: browser}, nil
}

func (b *PlaywrightBrowser) NewPage() (Page, error) {
	page, err := b.browser.NewPage(playwright.BrowserNewPageOptions{
		Viewport: &playwright.Size{Width: ViewportWidth, Height: ViewportHeight},
	})
	if err != nil {
		return nil, err
	}
	page.SetDefaultNavigationTimeout(float64(NavigationTimeout.Milliseconds()))
	return &playwrightPage{page: page}, nil
}

func (b *PlaywrightBrowser) Close() error {
	return errors.Join(b.browser.Close(), b.pwClient.Stop())
}

type playwrightPage struct {
	page playwright.Page
}

func (p *playwrightPage) Goto(url string) error {
	_, err := p.page.Goto(url)
	return err
}

func (p *playwrightPage) Screenshot(path string) error {
	_, err := p.page.Screenshot(playwright.PageScreenshotOptions{
		Path: playwright.String(path),
	})
	return err
}

func (p *playwrightPage) Close() error {
	return p.page.Close()
}
