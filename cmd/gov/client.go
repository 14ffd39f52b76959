package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

func postJSON(url, route string, req any, resp any) error {
	dat, err := json.Marshal(req)
	if err != nil {
		return err
	}
	hres, err := http.Post(url+route, "application/json", bytes.NewReader(dat))
	if err != nil {
		return err
	}
	defer hres.Body.Close()
	body, err := io.ReadAll(hres.Body)
	if err != nil {
		return err
	}
	if hres.StatusCode != http.StatusOK {
		return fmt.Errorf("status %v: %s", hres.StatusCode, body)
	}
	if resp != nil {
		return json.Unmarshal(body, resp)
	}
	return nil
}

func printJSON(v any) {
	dat, _ := json.MarshalIndent(v, "", " ")
	fmt.Printf("%s\n", dat)
}
