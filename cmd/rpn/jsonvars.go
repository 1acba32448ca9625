package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/itchyny/gojq"

	"rpn"
)

// loadJSONVariablesFile reads path and seeds c from the result of query.
func loadJSONVariablesFile(c *rpn.Context, path, query string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("reading %s: %w", path, err)
	}
	n, err := loadJSONVariables(c, data, query)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", path, err)
	}
	return n, nil
}

// loadJSONVariables runs a jq query over a JSON document. Every object the query
// yields is flattened into variables: nested keys are joined with dots, booleans
// become 1 or 0. It returns how many variables were set.
func loadJSONVariables(c *rpn.Context, doc []byte, query string) (int, error) {
	if query == "" {
		query = "."
	}
	q, err := gojq.Parse(query)
	if err != nil {
		return 0, fmt.Errorf("invalid query %q: %w", query, err)
	}

	var input any
	dec := json.NewDecoder(bytes.NewReader(doc))
	if err := dec.Decode(&input); err != nil {
		return 0, fmt.Errorf("could not decode JSON: %w", err)
	}

	vars := make(map[string]rpn.Value)
	iter := q.Run(input)
	for {
		v, ok := iter.Next()
		if !ok {
			break
		}
		if err, isErr := v.(error); isErr {
			return 0, fmt.Errorf("query %q: %w", query, err)
		}
		obj, isObj := v.(map[string]any)
		if !isObj {
			return 0, fmt.Errorf("query %q must yield objects, got %T", query, v)
		}
		if err := flatten("", obj, vars); err != nil {
			return 0, err
		}
	}

	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		c.SetVariable(name, vars[name])
	}
	return len(names), nil
}

func flatten(prefix string, obj map[string]any, into map[string]rpn.Value) error {
	for k, v := range obj {
		name := k
		if prefix != "" {
			name = prefix + "." + k
		}
		switch tv := v.(type) {
		case float64:
			into[name] = rpn.Value(tv)
		case int:
			into[name] = rpn.Value(tv)
		case bool:
			if tv {
				into[name] = 1
			} else {
				into[name] = 0
			}
		case map[string]any:
			if err := flatten(name, tv, into); err != nil {
				return err
			}
		default:
			return fmt.Errorf("variable %q: %T is not a number", name, v)
		}
	}
	return nil
}
