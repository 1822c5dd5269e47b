// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/aws/aws-sdk-go-v2/service/lambda/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-unit-dispatcher/internal/config"
	"github.com/MKhiriev/go-unit-dispatcher/internal/logger"
	"github.com/MKhiriev/go-unit-dispatcher/models"
)

// fakeInvoker records invocations and answers with a fixed result.
type fakeInvoker struct {
	inputs      []*lambda.InvokeInput
	hadDeadline bool
	status      int32
	err         error
}

func (f *fakeInvoker) Invoke(ctx context.Context, in *lambda.InvokeInput, _ ...func(*lambda.Options)) (*lambda.InvokeOutput, error) {
	f.inputs = append(f.inputs, in)
	_, f.hadDeadline = ctx.Deadline()
	if f.err != nil {
		return nil, f.err
	}
	return &lambda.InvokeOutput{StatusCode: f.status}, nil
}

func newTestLambdaAdapter(invoker LambdaInvoker, timeout time.Duration) ProcessorAdapter {
	return NewLambdaProcessorAdapter(invoker, config.Adapter{
		ProcessorName:  "unit-processor",
		RequestTimeout: timeout,
	}, logger.Nop())
}

func TestLambdaDispatch_Accepted(t *testing.T) {
	// Arrange
	invoker := &fakeInvoker{status: 202}
	a := newTestLambdaAdapter(invoker, time.Second)
	payload := models.NewDispatchPayload(3, []models.Unit{{"id": "u1"}, {"id": "u2"}, {"id": "u3"}})

	// Act
	err := a.Dispatch(context.Background(), payload)

	// Assert
	require.NoError(t, err)
	require.Len(t, invoker.inputs, 1)
	in := invoker.inputs[0]
	assert.Equal(t, "unit-processor", aws.ToString(in.FunctionName))
	assert.Equal(t, types.InvocationTypeEvent, in.InvocationType)
	assert.True(t, invoker.hadDeadline)

	var sent models.DispatchPayload
	require.NoError(t, json.Unmarshal(in.Payload, &sent))
	assert.Equal(t, 3, sent.AmountToProcess)
	require.Len(t, sent.Units, 3)
	assert.Equal(t, "u3", sent.Units[2]["id"])
}

func TestLambdaDispatch_NoTimeoutKeepsContext(t *testing.T) {
	invoker := &fakeInvoker{status: 202}

	err := newTestLambdaAdapter(invoker, 0).Dispatch(context.Background(), models.NewDispatchPayload(0, nil))

	require.NoError(t, err)
	assert.False(t, invoker.hadDeadline)
}

func TestLambdaDispatch_NotAccepted(t *testing.T) {
	invoker := &fakeInvoker{status: 200}

	err := newTestLambdaAdapter(invoker, 0).Dispatch(context.Background(), models.NewDispatchPayload(0, nil))

	assert.ErrorIs(t, err, ErrDispatchNotAccepted)
	assert.Contains(t, err.Error(), "200")
}

func TestLambdaDispatch_InvokeError(t *testing.T) {
	invokeErr := errors.New("ResourceNotFoundException: Function not found: unit-processor")
	invoker := &fakeInvoker{err: invokeErr}

	err := newTestLambdaAdapter(invoker, 0).Dispatch(context.Background(), models.NewDispatchPayload(0, nil))

	assert.ErrorIs(t, err, invokeErr)
	assert.Contains(t, err.Error(), "Function not found")
}

func TestLambdaDispatch_EncodingError(t *testing.T) {
	invoker := &fakeInvoker{status: 202}
	payload := models.NewDispatchPayload(1, []models.Unit{{"bad": make(chan int)}})

	err := newTestLambdaAdapter(invoker, 0).Dispatch(context.Background(), payload)

	assert.ErrorIs(t, err, ErrEncodingPayload)
	assert.Empty(t, invoker.inputs)
}

func TestNewLambdaClient_RegionOverride(t *testing.T) {
	client := NewLambdaClient(aws.Config{Region: "us-east-1"}, config.Adapter{Region: "eu-west-1"})
	assert.Equal(t, "eu-west-1", client.Options().Region)
}

func TestNewProcessorAdapter(t *testing.T) {
	awsCfg := aws.Config{Region: "us-east-1", Credentials: aws.AnonymousCredentials{}}

	a, err := NewProcessorAdapter(config.Adapter{Driver: config.AdapterDriverLambda, ProcessorName: "p"}, awsCfg, logger.Nop())
	require.NoError(t, err)
	assert.IsType(t, &lambdaProcessorAdapter{}, a)

	a, err = NewProcessorAdapter(config.Adapter{Driver: config.AdapterDriverHTTP, ProcessorURL: "http://localhost:9000"}, awsCfg, logger.Nop())
	require.NoError(t, err)
	assert.IsType(t, &httpProcessorAdapter{}, a)

	_, err = NewProcessorAdapter(config.Adapter{Driver: "sqs"}, awsCfg, logger.Nop())
	assert.ErrorIs(t, err, ErrUnknownAdapterDriver)
}
