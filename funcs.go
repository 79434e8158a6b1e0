package docxrender

import (
	"fmt"
	"reflect"
	"strings"
	"text/template"
)

// FuncMap is the map of functions available to placeholders.
type FuncMap = template.FuncMap

const bullet = "• "

// builtinFuncs are the helpers every template gets. inject, html and image
// are bound per template because they record injectors.
func (t *DocxTemplate) builtinFuncs() FuncMap {
	return FuncMap{
		"bullets": bullets,
		"lines":   lines,
		"inject":  t.inject,
		"html": func(content string) string {
			return t.inject(HTMLInjector{Content: content})
		},
		"image": func(src string) string {
			return t.inject(ImageInjector{Src: src})
		},
	}
}

// inject records v and returns the marker that stands for it in the
// rendered paragraph text.
func (t *DocxTemplate) inject(v Injector) string {
	t.injectSeq++
	id := fmt.Sprintf("__INJECT_%d__", t.injectSeq)
	t.injectors[id] = v
	return id
}

// bullets renders each item on its own line prefixed with a bullet.
func bullets(v interface{}) string {
	items := asStrings(v)
	for i, s := range items {
		items[i] = bullet + s
	}
	return strings.Join(items, "\n")
}

// lines renders each item on its own line.
func lines(v interface{}) string {
	return strings.Join(asStrings(v), "\n")
}

// asStrings flattens a scalar or a slice into trimmed, non-empty strings.
func asStrings(v interface{}) []string {
	if v == nil {
		return nil
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		s := strings.TrimSpace(fmt.Sprint(v))
		if s == "" {
			return nil
		}
		return []string{s}
	}
	out := make([]string, 0, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		item := rv.Index(i).Interface()
		if item == nil {
			continue
		}
		s := strings.TrimSpace(fmt.Sprint(item))
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
