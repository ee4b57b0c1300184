package backend

import (
	"context"
	"fmt"
	"strconv"
)

type Employee struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"is_admin"`
}

type EmployeeCreate struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type EmployeeUpdate struct {
	Username *string `json:"username,omitempty"`
	Password *string `json:"password,omitempty"`
	Name     *string `json:"name,omitempty"`
	Email    *string `json:"email,omitempty"`
	IsAdmin  *bool   `json:"is_admin,omitempty"`
}

func (c *Client) ListEmployees(ctx context.Context, skip, limit int) ([]*Employee, error) {
	var employees []*Employee
	resp, err := c.req(ctx).
		SetQueryParams(map[string]string{
			"skip":  strconv.Itoa(skip),
			"limit": strconv.Itoa(limit),
		}).
		SetResult(&employees).
		Get("/employees/getall")
	if err := c.checked(ctx, resp, err); err != nil {
		return nil, err
	}
	return employees, nil
}

func (c *Client) GetEmployee(ctx context.Context, id int) (*Employee, error) {
	e := new(Employee)
	resp, err := c.req(ctx).
		SetResult(e).
		Get(fmt.Sprintf("/employees/%d", id))
	if err := c.checked(ctx, resp, err); err != nil {
		return nil, err
	}
	return e, nil
}

func (c *Client) CreateEmployee(ctx context.Context, e *EmployeeCreate) (*Employee, error) {
	created := new(Employee)
	resp, err := c.req(ctx).
		SetBody(e).
		SetResult(created).
		Post("/employees/create")
	if err := c.checked(ctx, resp, err); err != nil {
		return nil, err
	}
	return created, nil
}

func (c *Client) UpdateEmployee(ctx context.Context, id int, e *EmployeeUpdate) (*Employee, error) {
	updated := new(Employee)
	resp, err := c.req(ctx).
		SetBody(e).
		SetResult(updated).
		Put(fmt.Sprintf("/employees/update/%d", id))
	if err := c.checked(ctx, resp, err); err != nil {
		return nil, err
	}
	return updated, nil
}

func (c *Client) DeleteEmployee(ctx context.Context, id int) error {
	resp, err := c.req(ctx).
		Delete(fmt.Sprintf("/employees/delete/%d", id))
	return c.checked(ctx, resp, err)
}
