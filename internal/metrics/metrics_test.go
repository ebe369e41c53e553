// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestHTTPRequestsTotal_CountsByLabels(t *testing.T) {
	c := HTTPRequestsTotal.WithLabelValues("GET", "/metrics-test", "200")
	before := testutil.ToFloat64(c)

	c.Inc()
	c.Inc()

	assert.Equal(t, before+2, testutil.ToFloat64(c))
}

func TestProductMutationsTotal_SeparatesOperations(t *testing.T) {
	create := ProductMutationsTotal.WithLabelValues(OperationCreate)
	del := ProductMutationsTotal.WithLabelValues(OperationDelete)
	createBefore, delBefore := testutil.ToFloat64(create), testutil.ToFloat64(del)

	create.Inc()

	assert.Equal(t, createBefore+1, testutil.ToFloat64(create))
	assert.Equal(t, delBefore, testutil.ToFloat64(del))
}

func TestUsersRegisteredTotal_Increments(t *testing.T) {
	before := testutil.ToFloat64(UsersRegisteredTotal)

	UsersRegisteredTotal.Inc()

	assert.Equal(t, before+1, testutil.ToFloat64(UsersRegisteredTotal))
}

func TestHTTPRequestDuration_Collects(t *testing.T) {
	HTTPRequestDuration.WithLabelValues("GET", "/duration-test").Observe(0.01)

	assert.Positive(t, testutil.CollectAndCount(HTTPRequestDuration))
}
