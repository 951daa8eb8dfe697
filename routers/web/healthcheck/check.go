// Copyright 2022 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package healthcheck

import (
	"context"
	"net/http"
	"time"

	"code.gitea.io/faceavatar/modules/json"
	"code.gitea.io/faceavatar/modules/log"
	"code.gitea.io/faceavatar/modules/setting"
	avatar_service "code.gitea.io/faceavatar/services/avatar"
)

type status string

const (
	// pass healthy, fail unhealthy, warn healthy with some concerns
	// ref https://datatracker.ietf.org/doc/html/draft-inadarei-api-health-check#section-3.1
	pass status = "pass"
	fail status = "fail"
	warn status = "warn"
)

func (s status) ToHTTPStatus() int {
	if s == pass || s == warn {
		return http.StatusOK
	}
	return http.StatusFailedDependency
}

type checks map[string][]componentStatus

// response is the data returned by the health endpoint, which will be marshaled to JSON format
type response struct {
	Status      status `json:"status"`
	Description string `json:"description"`
	Checks      checks `json:"checks,omitempty"`
}

// componentStatus presents one status of a single check object
type componentStatus struct {
	Status        status `json:"status"`
	Time          string `json:"time"`
	ObservedValue uint64 `json:"observedValue,omitempty"`
	Output        string `json:"output,omitempty"`
}

// Check returns the health check handler of the avatar service
func Check(svc *avatar_service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rsp := response{
			Status:      pass,
			Description: setting.AppName,
			Checks:      make(checks),
		}

		statuses := []status{
			checkPools(svc, rsp.Checks),
			checkRender(r.Context(), svc, rsp.Checks),
		}
		for _, s := range statuses {
			if s != pass {
				rsp.Status = fail
				break
			}
		}

		data, _ := json.MarshalIndent(rsp, "", "  ")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(rsp.Status.ToHTTPStatus())
		_, _ = w.Write(data)
	}
}

// checkPools reports the number of distinct avatars of the loaded pools
func checkPools(svc *avatar_service.Service, checks checks) status {
	st := componentStatus{Status: pass, Time: getCheckTime()}
	pools := svc.Pools()
	if err := pools.Validate(); err != nil {
		st.Status = fail
		st.Output = err.Error()
		log.Error("asset pool check failed with error: %v", err)
	} else {
		st.ObservedValue = pools.Combinations()
	}
	checks["assets:pools"] = []componentStatus{st}
	return st.Status
}

// checkRender renders the avatar of id 0
func checkRender(ctx context.Context, svc *avatar_service.Service, checks checks) status {
	st := componentStatus{Status: pass, Time: getCheckTime()}
	if _, err := svc.ByID(ctx, 0); err != nil {
		st.Status = fail
		st.Output = err.Error()
		log.Error("render check failed with error: %v", err)
	}
	checks["render:probe"] = []componentStatus{st}
	return st.Status
}

func getCheckTime() string {
	return time.Now().UTC().Format(time.RFC3339)
}
