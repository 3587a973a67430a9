package mocks

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Querier --dir ../domain/dataset --output domain/dataset --outpkg datasetmock --filename querier_mock.go
