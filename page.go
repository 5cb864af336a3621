package rtml

// HTMLPageElement is the builder for the batteries-included page component.
// It is written the way the generator emits component builders so the file
// doubles as the reference for generated output.
type HTMLPageElement struct {
	h           *HTML
	set         uint64
	mobile      bool
	title       string
	lang        string
	styleSheets []string
	scripts     []string
}

const (
	htmlPageSetMobile uint64 = 1 << iota
	htmlPageSetTitle
	htmlPageSetLang
	htmlPageSetStyleSheets
	htmlPageSetScripts
)

// HTMLPage starts a full-page component: html/head/body scaffolding with
// charset, optional viewport meta, title, stylesheets, and script sources.
func HTMLPage(h *HTML) *HTMLPageElement {
	return &HTMLPageElement{h: h}
}

// Mobile adds the responsive viewport meta tag.
func (e *HTMLPageElement) Mobile(mobile bool) *HTMLPageElement {
	if e.set&htmlPageSetMobile != 0 {
		WarnReset("HTMLPage", "mobile")
		return e
	}
	e.set |= htmlPageSetMobile
	e.mobile = mobile
	return e
}

// Title sets the page title. Mandatory.
func (e *HTMLPageElement) Title(title string) *HTMLPageElement {
	if e.set&htmlPageSetTitle != 0 {
		WarnReset("HTMLPage", "title")
		return e
	}
	e.set |= htmlPageSetTitle
	e.title = title
	return e
}

// Lang sets the html element's lang attribute. Defaults to "en".
func (e *HTMLPageElement) Lang(lang string) *HTMLPageElement {
	if e.set&htmlPageSetLang != 0 {
		WarnReset("HTMLPage", "lang")
		return e
	}
	e.set |= htmlPageSetLang
	e.lang = lang
	return e
}

// StyleSheets adds one stylesheet link per href.
func (e *HTMLPageElement) StyleSheets(styleSheets []string) *HTMLPageElement {
	if e.set&htmlPageSetStyleSheets != 0 {
		WarnReset("HTMLPage", "styleSheets")
		return e
	}
	e.set |= htmlPageSetStyleSheets
	e.styleSheets = styleSheets
	return e
}

// Scripts adds one script element per src.
func (e *HTMLPageElement) Scripts(scripts []string) *HTMLPageElement {
	if e.set&htmlPageSetScripts != 0 {
		WarnReset("HTMLPage", "scripts")
		return e
	}
	e.set |= htmlPageSetScripts
	e.scripts = scripts
	return e
}

// Body renders the page around the given body fragment.
func (e *HTMLPageElement) Body(body Fragment) { e.render(body) }

// Close renders the page with an empty body.
func (e *HTMLPageElement) Close() { e.render(NoBody) }

func (e *HTMLPageElement) render(body Fragment) {
	if e.set&htmlPageSetTitle == 0 {
		MissingField("HTMLPage", "title")
	}
	if e.set&htmlPageSetLang == 0 {
		e.lang = "en"
	}
	h := e.h
	Native(h, "html").Attr("lang", e.lang).Body(func(h *HTML) {
		Native(h, "head").Body(func(h *HTML) {
			Native(h, "meta").Attr("charset", "utf-8").Close()
			if e.mobile {
				Native(h, "meta").
					Attr("name", "viewport").
					Attr("content", "width=device-width, initial-scale=1").
					Close()
			}
			Native(h, "title").Body(func(h *HTML) {
				Write(h, e.title)
			})
			for _, styleSheet := range e.styleSheets {
				Native(h, "link").Attr("href", styleSheet).Attr("rel", "stylesheet").Close()
			}
			for _, script := range e.scripts {
				Native(h, "script").Attr("src", script).ScriptBody(nil)
			}
		})
		Native(h, "body").Body(body)
	})
}
