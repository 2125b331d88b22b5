package document

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/arthur-debert/actionq/pkg/actions"
	"github.com/arthur-debert/actionq/pkg/errors"
	"github.com/beevik/etree"
)

// XML layout:
//
//	<chain>
//	  <toast kind="success" title="Saved" textBody=""/>
//	  <navigation name="home" screen="Home">
//	    <param key="id">42</param>
//	  </navigation>
//	  <dialog title="Continue?" textBody="">
//	    <option text="Open"><link url="https://example.com"/></option>
//	  </dialog>
//	</chain>
//
// Param values are read back as strings.
const (
	xmlRootTag   = "chain"
	xmlOptionTag = "option"
	xmlParamTag  = "param"
)

func parseXML(data []byte) (*Document, error) {
	xdoc := etree.NewDocument()
	if err := xdoc.ReadFromBytes(data); err != nil {
		return nil, errors.Wrap(err, errors.ErrDocumentParse, "failed to parse XML document")
	}

	root := xdoc.Root()
	if root == nil {
		return nil, errors.New(errors.ErrDocumentParse, "XML document has no root element")
	}
	if root.Tag != xmlRootTag {
		return nil, errors.Newf(errors.ErrDocumentParse, "XML root element must be <%s>, got <%s>", xmlRootTag, root.Tag)
	}

	steps, err := xmlSteps(root)
	if err != nil {
		return nil, err
	}
	return &Document{Actions: steps}, nil
}

func xmlSteps(parent *etree.Element) ([]Step, error) {
	var steps []Step
	for _, el := range parent.ChildElements() {
		step, err := xmlStep(el)
		if err != nil {
			return nil, err
		}
		steps = append(steps, step)
	}
	return steps, nil
}

func xmlStep(el *etree.Element) (Step, error) {
	attr := func(key string) string {
		return el.SelectAttrValue(key, "")
	}

	step := Step{Type: el.Tag}
	switch el.Tag {
	case actions.TypeNavigation:
		step.Name = attr("name")
		step.Screen = attr("screen")
		params, err := xmlParams(el)
		if err != nil {
			return Step{}, err
		}
		step.Params = params
	case actions.TypeToast:
		step.Kind = attr("kind")
		step.Title = attr("title")
		step.TextBody = attr("textBody")
	case actions.TypeLink:
		step.URL = attr("url")
	case actions.TypeNotification:
		step.Title = attr("title")
		step.Body = attr("body")
	case actions.TypeDialog:
		step.Title = attr("title")
		step.TextBody = attr("textBody")
		for _, child := range el.ChildElements() {
			if child.Tag != xmlOptionTag {
				return Step{}, errors.Newf(errors.ErrDocumentParse,
					"<dialog> may only contain <%s>, got <%s>", xmlOptionTag, child.Tag)
			}
			sub, err := xmlSteps(child)
			if err != nil {
				return Step{}, err
			}
			step.Options = append(step.Options, Option{
				Text:    child.SelectAttrValue("text", ""),
				Actions: sub,
			})
		}
	}
	// Unknown tags pass through so Build reports UNKNOWN_ACTION with a path
	return step, nil
}

// xmlParams reads keyed params into a map, or a single unkeyed param as a
// scalar string
func xmlParams(el *etree.Element) (interface{}, error) {
	children := el.SelectElements(xmlParamTag)
	if len(children) == 0 {
		return nil, nil
	}

	if len(children) == 1 && children[0].SelectAttr("key") == nil {
		return children[0].Text(), nil
	}

	params := make(map[string]interface{}, len(children))
	for _, p := range children {
		key := p.SelectAttr("key")
		if key == nil {
			return nil, errors.New(errors.ErrDocumentParse, "<param> needs a key when more than one is given")
		}
		params[key.Value] = p.Text()
	}
	return params, nil
}

func marshalXML(doc *Document) ([]byte, error) {
	xdoc := etree.NewDocument()
	xdoc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	root := xdoc.CreateElement(xmlRootTag)

	if doc != nil {
		if err := appendXMLSteps(root, doc.Actions); err != nil {
			return nil, err
		}
	}

	xdoc.Indent(2)
	b, err := xdoc.WriteToBytes()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrEncode, "failed to encode XML document")
	}
	return b, nil
}

func appendXMLSteps(parent *etree.Element, steps []Step) error {
	for _, step := range steps {
		el := parent.CreateElement(step.Type)
		switch step.Type {
		case actions.TypeNavigation:
			el.CreateAttr("name", step.Name)
			el.CreateAttr("screen", step.Screen)
			if err := appendXMLParams(el, step.Params); err != nil {
				return err
			}
		case actions.TypeToast:
			el.CreateAttr("kind", step.Kind)
			el.CreateAttr("title", step.Title)
			el.CreateAttr("textBody", step.TextBody)
		case actions.TypeLink:
			el.CreateAttr("url", step.URL)
		case actions.TypeNotification:
			el.CreateAttr("title", step.Title)
			el.CreateAttr("body", step.Body)
		case actions.TypeDialog:
			el.CreateAttr("title", step.Title)
			el.CreateAttr("textBody", step.TextBody)
			for _, opt := range step.Options {
				optEl := el.CreateElement(xmlOptionTag)
				optEl.CreateAttr("text", opt.Text)
				if err := appendXMLSteps(optEl, opt.Actions); err != nil {
					return err
				}
			}
		default:
			return errors.Newf(errors.ErrUnknownAction, "unknown action type %q", step.Type)
		}
	}
	return nil
}

func appendXMLParams(el *etree.Element, params interface{}) error {
	switch val := params.(type) {
	case nil:
		return nil
	case map[string]interface{}:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			text, err := xmlText(val[k])
			if err != nil {
				return err
			}
			p := el.CreateElement(xmlParamTag)
			p.CreateAttr("key", k)
			p.SetText(text)
		}
		return nil
	default:
		text, err := xmlText(val)
		if err != nil {
			return err
		}
		el.CreateElement(xmlParamTag).SetText(text)
		return nil
	}
}

// xmlText renders scalars as-is and structured values as JSON text
func xmlText(v interface{}) (string, error) {
	switch val := v.(type) {
	case string:
		return val, nil
	case map[string]interface{}, []interface{}:
		b, err := json.Marshal(val)
		if err != nil {
			return "", errors.Wrap(err, errors.ErrEncode, "failed to encode XML param")
		}
		return string(b), nil
	default:
		return fmt.Sprint(val), nil
	}
}
