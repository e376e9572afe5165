// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package handler_test

import (
	"bytes"
	"encoding/json"
	"io/ioutil"
	"net"
	"net/http"
	"net/http/httptest"
	"net/rpc"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/auditd/rpc/fixtures"
	"github.com/bitmark-inc/auditd/rpc/handler"
	"github.com/bitmark-inc/auditd/rpc/mocks"
)

const (
	notAllowed      = "method not allowed"
	tooManyRequests = "Too Many Requests"
)

type eResp struct {
	Code  int    `json:"code"`
	Error string `json:"error"`
}

type jResp struct {
	ID     int         `json:"id"`
	Result int         `json:"result"`
	Error  interface{} `json:"error"`
}

type jReq struct {
	ID     int      `json:"id"`
	Method string   `json:"method"`
	Params []AddArg `json:"params"`
}

type Add struct{}
type AddArg struct {
	A int `json:"A"`
	B int `json:"B"`
}

func (a Add) Add(arg *AddArg, reply *int) error {
	*reply = arg.A + arg.B
	return nil
}

func newHandler(ctl *gomock.Controller, maximumConnections uint64) (handler.Handler, *mocks.MockRegistry) {
	s := rpc.NewServer()
	_ = s.Register(Add{})

	r := mocks.NewMockRegistry(ctl)

	h := handler.New(
		logger.New(fixtures.LogCategory),
		s,
		time.Now(),
		"1.0",
		maximumConnections,
		r,
	)
	return h, r
}

// httptest requests come from 192.0.2.1
func allowTestClient(h handler.Handler) {
	allow := make(map[string][]*net.IPNet)
	_, ipNet, _ := net.ParseCIDR("192.0.2.0/24")
	allow["details"] = []*net.IPNet{ipNet}
	h.SetAllow(allow)
}

func TestRoot(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	h, _ := newHandler(ctl, 5)

	req := httptest.NewRequest("GET", "http://not.found", nil)
	w := httptest.NewRecorder()
	h.Root(w, req)

	resp := w.Result()
	var j eResp
	_ = json.NewDecoder(resp.Body).Decode(&j)

	assert.Equal(t, "not found", j.Error, "wrong response")
	assert.Equal(t, http.StatusNotFound, j.Code, "wrong http code")
}

func TestRPC(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	h, _ := newHandler(ctl, 5)

	add := AddArg{
		A: 1,
		B: 2,
	}

	arg := jReq{
		ID:     5,
		Method: "Add.Add",
		Params: []AddArg{add},
	}
	data, _ := json.Marshal(arg)

	req := httptest.NewRequest("POST", "http://not.exist", bytes.NewReader(data))
	w := httptest.NewRecorder()
	h.RPC(w, req)

	resp := w.Result()
	var j jResp
	_ = json.NewDecoder(resp.Body).Decode(&j)
	assert.Equal(t, http.StatusOK, resp.StatusCode, "wrong status code")
	assert.Equal(t, add.A+add.B, j.Result, "wrong result")
	assert.Nil(t, j.Error, "wrong error")
	assert.NotEqual(t, "", resp.Header.Get("X-Request-Id"), "missing request id")
}

func TestDetails(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	h, r := newHandler(ctl, 10)
	allowTestClient(h)

	r.EXPECT().TotalContracts().Return(uint64(17)).Times(1)

	req := httptest.NewRequest("GET", "http://test.com", nil)
	w := httptest.NewRecorder()

	h.Details(w, req)

	resp := w.Result()
	b, _ := ioutil.ReadAll(resp.Body)
	assert.Contains(t, string(b), "Stopped", "wrong response")
	assert.Contains(t, string(b), `"totalContracts":"17"`, "wrong total")
}

func TestRejectedRequests(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	items := []struct {
		name        string
		method      string
		details     bool
		allow       bool
		connections uint64
		expected    string
	}{
		{"rpc get", "GET", false, false, 5, notAllowed},
		{"rpc overload", "POST", false, false, 0, tooManyRequests},
		{"details post", "POST", true, true, 5, notAllowed},
		{"details not allowed", "GET", true, false, 5, "forbidden"},
		{"details overload", "GET", true, true, 0, tooManyRequests},
	}

	for _, item := range items {
		h, _ := newHandler(ctl, item.connections)
		if item.allow {
			allowTestClient(h)
		}

		req := httptest.NewRequest(item.method, "http://not.exist", nil)
		w := httptest.NewRecorder()
		if item.details {
			h.Details(w, req)
		} else {
			h.RPC(w, req)
		}

		var j eResp
		_ = json.NewDecoder(w.Result().Body).Decode(&j)
		assert.Equal(t, item.expected, j.Error, "%s: wrong error", item.name)
	}
}
