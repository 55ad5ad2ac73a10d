package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/misuhub/receivables_app/internal/core/domain"
	portssvc "github.com/misuhub/receivables_app/internal/core/ports/services"
	"github.com/misuhub/receivables_app/internal/core/services"
	"github.com/misuhub/receivables_app/internal/dto"
	"github.com/misuhub/receivables_app/internal/recon"
)

func TestRenderSmsTemplate(t *testing.T) {
	vars := map[string]string{
		"customerName": "Acme Construction",
		"unpaidAmount": "1,250,000",
	}

	out := services.RenderSmsTemplate("Dear {customerName}, you owe {unpaidAmount}.", vars)
	assert.Equal(t, "Dear Acme Construction, you owe 1,250,000.", out)
}

func TestRenderSmsTemplate_UnknownPlaceholderRendersEmpty(t *testing.T) {
	out := services.RenderSmsTemplate("Hi {customerName}{bogus}!", map[string]string{"customerName": "Kim"})
	assert.Equal(t, "Hi Kim!", out)
}

func TestRenderSmsTemplate_NoPlaceholders(t *testing.T) {
	out := services.RenderSmsTemplate("Payment reminder.", nil)
	assert.Equal(t, "Payment reminder.", out)
}

type SmsServiceTestSuite struct {
	suite.Suite
	mockSmsRepo      *MockSmsRepository
	mockCustomerRepo *MockCustomerRepository
	mockTxnSvc       *MockTransactionReaderSvc
	mockSender       *MockSmsSender
	service          portssvc.SmsSvcFacade
}

func (suite *SmsServiceTestSuite) SetupTest() {
	suite.mockSmsRepo = new(MockSmsRepository)
	suite.mockCustomerRepo = new(MockCustomerRepository)
	suite.mockTxnSvc = new(MockTransactionReaderSvc)
	suite.mockSender = new(MockSmsSender)
	suite.service = services.NewSmsService(suite.mockSmsRepo, suite.mockCustomerRepo, suite.mockTxnSvc, suite.mockSender)
}

func (suite *SmsServiceTestSuite) reconciledTxns(customerID string) []recon.ReconciledTransaction {
	return []recon.ReconciledTransaction{
		{
			Transaction: domain.Transaction{
				TransactionID: uuid.NewString(),
				CustomerID:    customerID,
				Amount:        2_000_000,
				Status:        domain.TransactionUnpaid,
			},
			PaidAmount:   750_000,
			UnpaidAmount: 1_250_000,
			PaidRatio:    37,
		},
	}
}

func (suite *SmsServiceTestSuite) TestSendSms_RendersAndMarksSent() {
	ctx := context.Background()
	customerID := uuid.NewString()
	customer := &domain.Customer{CustomerID: customerID, Name: "Acme Construction", Phone: "010-1234-5678"}

	suite.mockCustomerRepo.On("FindCustomerByID", ctx, customerID).Return(customer, nil).Once()
	suite.mockTxnSvc.On("ListTransactionsByCustomer", ctx, customerID).Return(suite.reconciledTxns(customerID), nil).Once()
	suite.mockSmsRepo.On("SaveSms", ctx, mock.MatchedBy(func(s domain.SmsMessage) bool {
		return s.Status == domain.SmsPending && s.Content == "Acme Construction: 1,250,000 outstanding"
	})).Return(nil).Once()
	suite.mockSender.On("Send", ctx, "010-1234-5678", "Acme Construction: 1,250,000 outstanding").Return(nil).Once()
	suite.mockSmsRepo.On("UpdateSmsStatus", ctx, mock.AnythingOfType("string"), domain.SmsSent).Return(nil).Once()

	sms, err := suite.service.SendSms(ctx, dto.SendSmsRequest{
		CustomerID: customerID,
		Template:   "{customerName}: {unpaidAmount} outstanding",
	})

	suite.Require().NoError(err)
	suite.Require().NotNil(sms)
	suite.Equal(domain.SmsSent, sms.Status)
	suite.Equal("Acme Construction: 1,250,000 outstanding", sms.Content)

	suite.mockSmsRepo.AssertExpectations(suite.T())
	suite.mockSender.AssertExpectations(suite.T())
}

func (suite *SmsServiceTestSuite) TestSendSms_DispatchFailureMarksFailed() {
	ctx := context.Background()
	customerID := uuid.NewString()
	customer := &domain.Customer{CustomerID: customerID, Name: "Acme Construction", Phone: "010-1234-5678"}

	suite.mockCustomerRepo.On("FindCustomerByID", ctx, customerID).Return(customer, nil).Once()
	suite.mockTxnSvc.On("ListTransactionsByCustomer", ctx, customerID).Return(suite.reconciledTxns(customerID), nil).Once()
	suite.mockSmsRepo.On("SaveSms", ctx, mock.AnythingOfType("domain.SmsMessage")).Return(nil).Once()
	suite.mockSender.On("Send", ctx, "010-1234-5678", mock.AnythingOfType("string")).
		Return(errors.New("gateway timeout")).Once()
	suite.mockSmsRepo.On("UpdateSmsStatus", ctx, mock.AnythingOfType("string"), domain.SmsFailed).Return(nil).Once()

	sms, err := suite.service.SendSms(ctx, dto.SendSmsRequest{CustomerID: customerID, Template: "reminder"})

	suite.Require().NoError(err)
	suite.Equal(domain.SmsFailed, sms.Status)
	suite.mockSmsRepo.AssertExpectations(suite.T())
}

func (suite *SmsServiceTestSuite) TestSendSms_UnknownCustomer() {
	ctx := context.Background()
	customerID := uuid.NewString()

	suite.mockCustomerRepo.On("FindCustomerByID", ctx, customerID).Return(nil, errors.New("not found")).Once()

	sms, err := suite.service.SendSms(ctx, dto.SendSmsRequest{CustomerID: customerID, Template: "reminder"})

	suite.Require().Error(err)
	suite.Nil(sms)
	suite.mockSmsRepo.AssertNotCalled(suite.T(), "SaveSms", mock.Anything, mock.Anything)
}

func (suite *SmsServiceTestSuite) TestListSmsByCustomer() {
	ctx := context.Background()
	customerID := uuid.NewString()
	messages := []domain.SmsMessage{
		{SmsMessageID: uuid.NewString(), CustomerID: customerID, Status: domain.SmsSent},
	}

	suite.mockSmsRepo.On("ListSmsByCustomer", ctx, customerID).Return(messages, nil).Once()

	got, err := suite.service.ListSmsByCustomer(ctx, customerID)

	suite.Require().NoError(err)
	suite.Len(got, 1)
}

func TestSmsServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SmsServiceTestSuite))
}
