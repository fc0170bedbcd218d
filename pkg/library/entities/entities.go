package entities

import (
	"encoding/json"
	"fmt"

	"github.com/diwise/library-resolver/pkg/library/types"
)

type EntityDecoratorFunc func(e *EntityImpl)

func New(entityURI, entityType string, decorators ...EntityDecoratorFunc) (types.Entity, error) {
	if entityURI == "" {
		return nil, fmt.Errorf("entities must have a uri")
	}

	e := &EntityImpl{
		entityURI:  entityURI,
		entityType: entityType,
		attributes: map[string]any{},
	}

	for _, decorator := range decorators {
		decorator(e)
	}

	return e, nil
}

func NewFromJSON(body []byte) (types.Entity, error) {
	e := &EntityImpl{}
	err := json.Unmarshal(body, e)

	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal entity: %w", err)
	}

	if e.URI() == "" {
		return nil, fmt.Errorf("failed to parse entity (missing uri)")
	}

	return e, nil
}

func NewFromSlice(body []byte) ([]types.Entity, error) {
	impls := []*EntityImpl{}
	err := json.Unmarshal(body, &impls)
	if err != nil {
		return nil, err
	}

	arr := make([]types.Entity, 0, len(impls))

	for _, e := range impls {
		if e == nil || e.URI() == "" {
			continue
		}
		arr = append(arr, e)
	}

	return arr, nil
}

// Merge returns a new entity holding every attribute of existing, overwritten
// by the attributes of incoming. The uri is taken from incoming and so is the
// type, unless incoming has none.
func Merge(existing, incoming types.Entity) types.Entity {
	if existing == nil {
		return incoming
	}

	if incoming == nil {
		return existing
	}

	entityType := incoming.Type()
	if entityType == "" {
		entityType = existing.Type()
	}

	merged := &EntityImpl{
		entityURI:  incoming.URI(),
		entityType: entityType,
		attributes: map[string]any{},
	}

	existing.ForEachAttribute(func(name string, contents any) {
		merged.attributes[name] = contents
	})

	incoming.ForEachAttribute(func(name string, contents any) {
		merged.attributes[name] = contents
	})

	return merged
}

type EntityImpl struct {
	entityURI  string
	entityType string

	attributes map[string]any
}

func (e EntityImpl) URI() string {
	return e.entityURI
}

func (e EntityImpl) Type() string {
	return e.entityType
}

func (e EntityImpl) Attribute(name string) (any, bool) {
	value, ok := e.attributes[name]
	if !ok || value == nil {
		return nil, false
	}

	return value, true
}

func (e EntityImpl) ForEachAttribute(callback func(attributeName string, contents any)) {
	for k, v := range e.attributes {
		callback(k, v)
	}
}

func (e *EntityImpl) RemoveAttribute(predicate func(attributeName string, contents any) bool) {
	for k, v := range e.attributes {
		if predicate(k, v) {
			delete(e.attributes, k)
		}
	}
}

func (e EntityImpl) MarshalJSON() ([]byte, error) {
	contents := map[string]any{}

	for k, v := range e.attributes {
		contents[k] = v
	}

	contents["uri"] = e.URI()

	if e.entityType != "" {
		contents["type"] = e.Type()
	}

	return json.Marshal(&contents)
}

func (e *EntityImpl) UnmarshalJSON(data []byte) error {
	var contents map[string]any

	err := json.Unmarshal(data, &contents)
	if err != nil {
		return fmt.Errorf("failed to unmarshal entity: %w", err)
	}

	header := struct {
		URI  string `json:"uri"`
		Type string `json:"type"`
	}{}

	err = json.Unmarshal(data, &header)
	if err != nil {
		return fmt.Errorf("failed to unmarshal entity header: %w", err)
	}

	// Delete the attributes we have already dealt with
	delete(contents, "uri")
	delete(contents, "type")

	e.entityURI = header.URI
	e.entityType = header.Type
	e.attributes = map[string]any{}

	for k, v := range contents {
		// null and undefined are equally missing, so nulls are never stored
		if v == nil {
			continue
		}
		e.attributes[k] = v
	}

	return nil
}

func Attr(name string, value any) EntityDecoratorFunc {
	return func(e *EntityImpl) {
		if value == nil {
			delete(e.attributes, name)
			return
		}
		e.attributes[name] = value
	}
}
